package models

import (
	"time"
)

type Review struct {
	ID           int64     `db:"id" json:"id"`
	GigID        int64     `db:"gig_id" json:"gigId"`
	RevieweeID   int64     `db:"reviewee_id" json:"revieweeId"`
	ReviewerID   int64     `db:"reviewer_id" json:"reviewerId"`
	RevieweeName string    `db:"reviewee_name" json:"revieweeName"`
	ReviewerName string    `db:"reviewer_name" json:"reviewerName"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type CreateReviewRequest struct {
	GigID      int64  `json:"gigId" validate:"required"`
	RevieweeID int64  `json:"revieweeId" validate:"required"`
	ReviewerID int64  `json:"reviewerId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment,omitempty"`
}

// CompletedGig is a gig the user was party to, flagged with whether they
// have already left their review for it.
type CompletedGig struct {
	Gig
	HasReviewed bool `json:"hasReviewed"`
	CanReview   bool `json:"canReview"`
}
