package feed

import (
	"context"

	"devconnect-service/internal/models"
)

// RequestLister is the slice of the request store the feed needs.
type RequestLister interface {
	FindInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
}

// UserPager is the slice of the user directory the feed needs.
type UserPager interface {
	FindPage(ctx context.Context, excludeIDs []string, selfID string, offset, limit int) ([]models.User, error)
}

// FeedService builds the discovery feed: users the caller has no request
// history with, in any direction, with any status. Exclusion is deliberately
// status-agnostic, so even an ignored or rejected user never reappears.
type FeedService struct {
	requests     RequestLister
	users        UserPager
	defaultLimit int
	maxLimit     int
}

func NewFeedService(requests RequestLister, users UserPager, defaultLimit, maxLimit int) *FeedService {
	return &FeedService{
		requests:     requests,
		users:        users,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// GetFeed returns one page of candidate profiles. Page numbers start at 1;
// out-of-range limits fall back to the default or get clamped to the max.
func (s *FeedService) GetFeed(ctx context.Context, userID string, page, limit int) ([]models.UserSummary, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	recs, err := s.requests.FindInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	hidden := make(map[string]struct{}, len(recs)*2)
	for _, rec := range recs {
		hidden[rec.FromUserID] = struct{}{}
		hidden[rec.ToUserID] = struct{}{}
	}

	excludeIDs := make([]string, 0, len(hidden))
	for id := range hidden {
		excludeIDs = append(excludeIDs, id)
	}

	users, err := s.users.FindPage(ctx, excludeIDs, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
