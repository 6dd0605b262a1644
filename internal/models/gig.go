package models

import (
	"time"

	"github.com/snapwork/snapwork/internal/geo"
)

// Gig status constants
const (
	GigStatusOpen      = "open"
	GigStatusAssigned  = "assigned"
	GigStatusCompleted = "completed"
)

// Valid gig state transitions
var ValidGigTransitions = map[string][]string{
	GigStatusOpen:      {GigStatusAssigned},
	GigStatusAssigned:  {GigStatusCompleted},
	GigStatusCompleted: {},
}

// Payment types
const (
	PaymentTypeFixed = "fixed"
	PaymentTypeDaily = "daily"
)

type Gig struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	Location     string    `db:"location" json:"location"`
	Phone        string    `db:"phone" json:"phone,omitempty"`
	Payment      string    `db:"payment" json:"payment"`
	PaymentType  string    `db:"payment_type" json:"paymentType"`
	TimePosted   string    `db:"time_posted" json:"timePosted,omitempty"`
	Urgent       bool      `db:"urgent" json:"urgent"`
	Distance     string    `db:"distance" json:"distance,omitempty"`
	PostedBy     int64     `db:"posted_by" json:"postedBy"`
	PostedByName string    `db:"posted_by_name" json:"postedByName,omitempty"`
	AssignedTo   *int64    `db:"assigned_to" json:"assignedTo,omitempty"`
	Status       string    `db:"status" json:"status"`
	Lat          *float64  `db:"lat" json:"lat,omitempty"`
	Lng          *float64  `db:"lng" json:"lng,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type CreateGigRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"required,min=10"`
	Category    string   `json:"category" validate:"required"`
	Payment     string   `json:"payment" validate:"required"`
	PaymentType string   `json:"paymentType" validate:"omitempty,oneof=fixed daily"`
	Urgent      bool     `json:"urgent"`
	PostedBy    int64    `json:"postedBy" validate:"required"`
	Location    string   `json:"location"`
	Phone       string   `json:"phone"`
	Lat         *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng         *float64 `json:"lng" validate:"omitempty,longitude"`
}

type ApplyRequest struct {
	UserID  int64  `json:"userId" validate:"required"`
	Message string `json:"message,omitempty"`
}

type HireRequest struct {
	UserID int64 `json:"userId" validate:"required"`
}

type CompleteGigRequest struct {
	UserID int64 `json:"userId" validate:"required"`
}

// HasCoords reports whether the gig carries a full coordinate pair. Lat and
// Lng are only meaningful together.
func (g *Gig) HasCoords() bool {
	return g.Lat != nil && g.Lng != nil
}

// Coords returns the gig's location as a geo point. Only valid when
// HasCoords is true.
func (g *Gig) Coords() geo.Point {
	var p geo.Point
	if g.Lat != nil {
		p.Lat = *g.Lat
	}
	if g.Lng != nil {
		p.Lng = *g.Lng
	}
	return p
}

// CanTransitionTo checks if a gig can transition to a new status
func (g *Gig) CanTransitionTo(newStatus string) bool {
	validNextStates, exists := ValidGigTransitions[g.Status]
	if !exists {
		return false
	}

	for _, state := range validNextStates {
		if state == newStatus {
			return true
		}
	}
	return false
}
