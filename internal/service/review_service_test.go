package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
)

func TestCreateReviewOncePerParty(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	svc := NewReviewService(fs)
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, &models.CreateReviewRequest{
		GigID:      1,
		ReviewerID: 1,
		RevieweeID: 2,
		Rating:     5,
		Comment:    "Great work, right on time.",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ID != 1 {
		t.Errorf("review.ID = %d, want 1", review.ID)
	}
	if review.ReviewerName != "Customer Chitra" || review.RevieweeName != "Worker Wasim" {
		t.Errorf("denormalized names = %q / %q", review.ReviewerName, review.RevieweeName)
	}

	// same (gig, reviewer, reviewee) triple is rejected
	_, err = svc.CreateReview(ctx, &models.CreateReviewRequest{
		GigID: 1, ReviewerID: 1, RevieweeID: 2, Rating: 3,
	})
	if err != apperrors.ErrAlreadyReviewed {
		t.Errorf("duplicate err = %v, want ErrAlreadyReviewed", err)
	}

	// the reverse direction on the same gig is fine
	back, err := svc.CreateReview(ctx, &models.CreateReviewRequest{
		GigID: 1, ReviewerID: 2, RevieweeID: 1, Rating: 4,
	})
	if err != nil {
		t.Fatalf("reverse CreateReview: %v", err)
	}
	if back.ID != 2 {
		t.Errorf("back.ID = %d, want 2", back.ID)
	}
}

func TestCreateReviewRequestRatingRange(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
	}
	for _, tt := range tests {
		err := validate.Struct(models.CreateReviewRequest{
			GigID: 1, ReviewerID: 1, RevieweeID: 2, Rating: tt.rating,
		})
		if (err != nil) != tt.wantErr {
			t.Errorf("rating %d: err = %v, wantErr %v", tt.rating, err, tt.wantErr)
		}
	}
}

func TestCreateReviewUnknownUser(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	svc := NewReviewService(fs)

	_, err := svc.CreateReview(context.Background(), &models.CreateReviewRequest{
		GigID: 1, ReviewerID: 1, RevieweeID: 77, Rating: 5,
	})
	if err != apperrors.ErrUserNotFound {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestReviewsForUser(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	svc := NewReviewService(fs)
	ctx := context.Background()

	mustReview := func(gigID, reviewer, reviewee int64, rating int) {
		t.Helper()
		if _, err := svc.CreateReview(ctx, &models.CreateReviewRequest{
			GigID: gigID, ReviewerID: reviewer, RevieweeID: reviewee, Rating: rating,
		}); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}
	mustReview(1, 1, 2, 5)
	mustReview(2, 1, 2, 4)
	mustReview(1, 2, 1, 3)

	got := svc.ReviewsForUser(ctx, 2)
	if len(got) != 2 {
		t.Fatalf("ReviewsForUser(2) returned %d reviews, want 2", len(got))
	}
	for _, r := range got {
		if r.RevieweeID != 2 {
			t.Errorf("review %d has reviewee %d", r.ID, r.RevieweeID)
		}
	}

	if got := svc.ReviewsForUser(ctx, 99); len(got) != 0 {
		t.Errorf("ReviewsForUser(99) returned %d reviews, want 0", len(got))
	}
}

func TestCompletedGigsForUser(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	gigSvc := NewGigService(fs)
	svc := NewReviewService(fs)
	ctx := context.Background()

	gig, err := gigSvc.CreateGig(ctx, &models.CreateGigRequest{
		Title:       "Balcony Garden Setup",
		Description: "Set up planters and drip irrigation on a balcony.",
		Category:    "gardening",
		Payment:     "₹900",
		PostedBy:    1,
	})
	if err != nil {
		t.Fatalf("CreateGig: %v", err)
	}
	if _, err := gigSvc.Hire(ctx, gig.ID, &models.HireRequest{UserID: 2}); err != nil {
		t.Fatalf("Hire: %v", err)
	}
	if _, err := gigSvc.Complete(ctx, gig.ID, &models.CompleteGigRequest{UserID: 1}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// both parties see the gig; neither has reviewed yet
	for _, userID := range []int64{1, 2} {
		got := svc.CompletedGigsForUser(ctx, userID)
		if len(got) != 1 {
			t.Fatalf("CompletedGigsForUser(%d) returned %d gigs, want 1", userID, len(got))
		}
		if got[0].HasReviewed || !got[0].CanReview {
			t.Errorf("user %d: hasReviewed=%v canReview=%v before reviewing", userID, got[0].HasReviewed, got[0].CanReview)
		}
	}

	if _, err := svc.CreateReview(ctx, &models.CreateReviewRequest{
		GigID: gig.ID, ReviewerID: 1, RevieweeID: 2, Rating: 5,
	}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	got := svc.CompletedGigsForUser(ctx, 1)
	if len(got) != 1 || !got[0].HasReviewed || got[0].CanReview {
		t.Errorf("poster flags after reviewing = %+v", got)
	}
	// the worker's own flags are unaffected by the poster's review
	got = svc.CompletedGigsForUser(ctx, 2)
	if len(got) != 1 || got[0].HasReviewed {
		t.Errorf("worker flags after poster review = %+v", got)
	}

	// outsiders see nothing
	if got := svc.CompletedGigsForUser(ctx, 99); len(got) != 0 {
		t.Errorf("outsider sees %d completed gigs, want 0", len(got))
	}
}
