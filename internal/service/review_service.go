package service

import (
	"context"
	"time"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/store"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	ReviewsForUser(ctx context.Context, userID int64) []models.Review
	CompletedGigsForUser(ctx context.Context, userID int64) []models.CompletedGig
}

type reviewService struct {
	store store.Store
}

func NewReviewService(st store.Store) ReviewService {
	return &reviewService{store: st}
}

func (s *reviewService) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	users := s.store.LoadUsers(ctx)
	reviewer := findUser(users, req.ReviewerID)
	reviewee := findUser(users, req.RevieweeID)
	if reviewer == nil || reviewee == nil {
		return nil, apperrors.ErrUserNotFound
	}

	reviews := s.store.LoadReviews(ctx)
	for _, r := range reviews {
		if r.GigID == req.GigID && r.ReviewerID == req.ReviewerID && r.RevieweeID == req.RevieweeID {
			return nil, apperrors.ErrAlreadyReviewed
		}
	}

	review := models.Review{
		ID:           maxReviewID(reviews) + 1,
		GigID:        req.GigID,
		RevieweeID:   req.RevieweeID,
		ReviewerID:   req.ReviewerID,
		RevieweeName: reviewee.Name,
		ReviewerName: reviewer.Name,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	reviews = append(reviews, review)
	if err := s.store.SaveReviews(ctx, reviews); err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *reviewService) ReviewsForUser(ctx context.Context, userID int64) []models.Review {
	reviews := s.store.LoadReviews(ctx)

	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.RevieweeID == userID {
			out = append(out, r)
		}
	}
	return out
}

// CompletedGigsForUser returns completed gigs the user posted or worked,
// each flagged with whether the user has already reviewed for it.
func (s *reviewService) CompletedGigsForUser(ctx context.Context, userID int64) []models.CompletedGig {
	gigs := s.store.LoadGigs(ctx)
	reviews := s.store.LoadReviews(ctx)

	out := make([]models.CompletedGig, 0)
	for _, g := range gigs {
		if g.Status != models.GigStatusCompleted {
			continue
		}
		if g.PostedBy != userID && (g.AssignedTo == nil || *g.AssignedTo != userID) {
			continue
		}

		hasReviewed := false
		for _, r := range reviews {
			if r.GigID == g.ID && r.ReviewerID == userID {
				hasReviewed = true
				break
			}
		}

		out = append(out, models.CompletedGig{
			Gig:         g,
			HasReviewed: hasReviewed,
			CanReview:   !hasReviewed,
		})
	}
	return out
}

func maxReviewID(reviews []models.Review) int64 {
	var max int64
	for _, r := range reviews {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}
