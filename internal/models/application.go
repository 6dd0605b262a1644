package models

import (
	"time"
)

// Application records a worker's interest in a gig. At most one per
// (gig, worker) pair.
type Application struct {
	ID        int64     `db:"id" json:"id"`
	GigID     int64     `db:"gig_id" json:"gigId"`
	WorkerID  int64     `db:"worker_id" json:"workerId"`
	Message   string    `db:"message" json:"message,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
