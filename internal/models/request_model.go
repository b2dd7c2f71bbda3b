package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus is the state of a directional connection request.
type RequestStatus string

const (
	StatusIgnored    RequestStatus = "ignored"
	StatusInterested RequestStatus = "interested"
	StatusAccepted   RequestStatus = "accepted"
	StatusRejected   RequestStatus = "rejected"
	StatusConnected  RequestStatus = "connected"
)

var ErrSelfRequest = errors.New("cannot send connection request to yourself")

/** --------------------ENTITIES-------------------- */

// ConnectionRequest is a one-way interest signal from one user to another.
// A pair of opposite records in status "connected" forms a mutual connection.
// The unique index on (from_user_id, to_user_id) makes a duplicate directional
// edge impossible even under concurrent reviews.
type ConnectionRequest struct {
	ID         string        `gorm:"primaryKey;type:char(36)" json:"id"`
	FromUserID string        `gorm:"type:char(36);not null;uniqueIndex:idx_request_pair,priority:1" json:"fromUserId"`
	ToUserID   string        `gorm:"type:char(36);not null;uniqueIndex:idx_request_pair,priority:2;index" json:"toUserId"`
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"-"`

	FromUser User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"-"`
}

func (r *ConnectionRequest) BeforeCreate(tx *gorm.DB) error {
	if r.FromUserID == r.ToUserID {
		return ErrSelfRequest
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

/** -------------------- DTOs -------------------- */

// RequestWithProfile pairs a request record with the other party's profile,
// for the received/pending listings.
type RequestWithProfile struct {
	RequestID string        `json:"requestId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Profile   UserSummary   `json:"profile"`
}
