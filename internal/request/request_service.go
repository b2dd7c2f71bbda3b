package request

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"devconnect-service/internal/models"
	"devconnect-service/internal/user"
)

var (
	ErrInvalidStatus   = errors.New("invalid status type")
	ErrInvalidDecision = errors.New("invalid review decision")
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfRequest     = errors.New("cannot send a connection request to yourself")
	ErrRequestExists   = errors.New("a connection request already exists between these users")
	ErrRequestNotFound = errors.New("connection request not found")
)

// ReviewOutcome is what a review call reports back. It is not a record
// status: pending_mutual means a reciprocal interested record was created
// while the original stays interested.
type ReviewOutcome string

const (
	OutcomeConnected     ReviewOutcome = "connected"
	OutcomeRejected      ReviewOutcome = "rejected"
	OutcomePendingMutual ReviewOutcome = "pending_mutual"
)

// Event types published to Kafka.
const (
	EventRequestSent = "request.sent"
	EventConnected   = "connection.established"
)

type Event struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"requestId"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	At         time.Time `json:"at"`
}

// EventPublisher emits lifecycle events. Publishing is best effort, the
// engine never fails a call because an event could not be written.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// UserFinder is the slice of the user directory the engine needs.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// RequestService implements the connection-request lifecycle: sending
// directional interest signals and converging two opposite signals into a
// mutual connection.
type RequestService struct {
	repo   RequestRepository
	users  UserFinder
	events EventPublisher
}

func NewRequestService(repo RequestRepository, users UserFinder, events EventPublisher) *RequestService {
	return &RequestService{repo: repo, users: users, events: events}
}

// Send records a directional interest (or ignore) signal from one user to
// another. At most one record may exist between an unordered pair, in either
// direction, at send time.
func (s *RequestService) Send(ctx context.Context, fromUserID, toUserID string, status models.RequestStatus) (*models.ConnectionRequest, error) {
	if status != models.StatusIgnored && status != models.StatusInterested {
		return nil, ErrInvalidStatus
	}
	if fromUserID == toUserID {
		return nil, ErrSelfRequest
	}

	if _, err := s.users.FindByID(ctx, toUserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.repo.FindBetween(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestExists
	}

	rec := &models.ConnectionRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     status,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, models.ErrSelfRequest) {
			return nil, ErrSelfRequest
		}
		return nil, err
	}

	if status == models.StatusInterested {
		s.publish(ctx, EventRequestSent, rec)
	}

	return rec, nil
}

// Review lets the recipient of a pending request accept or reject it.
//
// On accept the engine looks for a reciprocal interested record from the
// reviewer back to the sender. If one exists, both records flip to connected
// atomically. If not, a fresh reciprocal interested record is created and
// the original stays interested: the pair only becomes connected once the
// original sender accepts that reciprocal record through this same path.
func (s *RequestService) Review(ctx context.Context, reviewerID, requestID string, decision models.RequestStatus) (ReviewOutcome, error) {
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return "", ErrInvalidDecision
	}

	rec, err := s.repo.FindPendingFor(ctx, requestID, reviewerID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrRequestNotFound
	}

	if decision == models.StatusRejected {
		rec.Status = models.StatusRejected
		if err := s.repo.Save(ctx, rec); err != nil {
			return "", err
		}
		return OutcomeRejected, nil
	}

	reciprocal, err := s.repo.FindReciprocal(ctx, reviewerID, rec.FromUserID)
	if err != nil {
		return "", err
	}

	if reciprocal != nil {
		if err := s.repo.Connect(ctx, rec, reciprocal); err != nil {
			return "", err
		}
		s.publish(ctx, EventConnected, rec)
		return OutcomeConnected, nil
	}

	mutual := &models.ConnectionRequest{
		FromUserID: reviewerID,
		ToUserID:   rec.FromUserID,
		Status:     models.StatusInterested,
	}
	if err := s.repo.Create(ctx, mutual); err != nil {
		return "", err
	}

	s.publish(ctx, EventRequestSent, mutual)
	return OutcomePendingMutual, nil
}

// Connections returns the profiles of everyone the user is connected with.
func (s *RequestService) Connections(ctx context.Context, userID string) ([]models.UserSummary, error) {
	recs, err := s.repo.FindConnected(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(recs))
	for _, rec := range recs {
		if rec.FromUserID == userID {
			summaries = append(summaries, rec.ToUser.Summary())
		} else {
			summaries = append(summaries, rec.FromUser.Summary())
		}
	}
	return summaries, nil
}

// Received returns pending requests addressed to the user, for review.
func (s *RequestService) Received(ctx context.Context, userID string) ([]models.RequestWithProfile, error) {
	recs, err := s.repo.FindReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.RequestWithProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RequestWithProfile{
			RequestID: rec.ID,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
			Profile:   rec.FromUser.Summary(),
		})
	}
	return out, nil
}

// Pending returns the user's own outbound signals still awaiting the other
// side's acceptance.
func (s *RequestService) Pending(ctx context.Context, userID string) ([]models.RequestWithProfile, error) {
	recs, err := s.repo.FindOutbound(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.RequestWithProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RequestWithProfile{
			RequestID: rec.ID,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
			Profile:   rec.ToUser.Summary(),
		})
	}
	return out, nil
}

func (s *RequestService) publish(ctx context.Context, eventType string, rec *models.ConnectionRequest) {
	if s.events == nil {
		return
	}
	ev := Event{
		Type:       eventType,
		RequestID:  rec.ID,
		FromUserID: rec.FromUserID,
		ToUserID:   rec.ToUserID,
		At:         time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish connection event", "type", eventType, "requestId", rec.ID, "error", err)
	}
}
