package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/snapwork/snapwork/internal/models"
)

// PostgresStore keeps each collection in a relational table while preserving
// the whole-collection read/write contract: loads select everything, saves
// replace everything inside one transaction.
type PostgresStore struct {
	db *sqlx.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS gigs (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		payment TEXT NOT NULL,
		payment_type TEXT NOT NULL DEFAULT 'fixed',
		time_posted TEXT NOT NULL DEFAULT '',
		urgent BOOLEAN NOT NULL DEFAULT FALSE,
		distance TEXT NOT NULL DEFAULT '',
		posted_by BIGINT NOT NULL,
		posted_by_name TEXT NOT NULL DEFAULT '',
		assigned_to BIGINT,
		status TEXT NOT NULL DEFAULT 'open',
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL,
		user_type TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGINT PRIMARY KEY,
		gig_id BIGINT NOT NULL,
		reviewee_id BIGINT NOT NULL,
		reviewer_id BIGINT NOT NULL,
		reviewee_name TEXT NOT NULL DEFAULT '',
		reviewer_name TEXT NOT NULL DEFAULT '',
		rating INT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGINT PRIMARY KEY,
		gig_id BIGINT NOT NULL,
		worker_id BIGINT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// NewPostgresStore ensures the schema exists and seeds the gig table on
// first run, mirroring the file backend.
func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	ctx := context.Background()
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	ps := &PostgresStore{db: db}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gigs`); err != nil {
		return nil, err
	}
	if count == 0 {
		if err := ps.SaveGigs(ctx, SeedGigs()); err != nil {
			return nil, err
		}
	}

	return ps, nil
}

// replaceAll rewrites a table inside one transaction so readers never see a
// half-written collection.
func (ps *PostgresStore) replaceAll(ctx context.Context, table, insert string, rows []interface{}) error {
	tx, err := ps.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (ps *PostgresStore) LoadGigs(ctx context.Context) []models.Gig {
	gigs := []models.Gig{}
	if err := ps.db.SelectContext(ctx, &gigs, `SELECT * FROM gigs`); err != nil {
		log.Printf("store: load gigs: %v", err)
		return []models.Gig{}
	}
	return gigs
}

func (ps *PostgresStore) SaveGigs(ctx context.Context, gigs []models.Gig) error {
	rows := make([]interface{}, len(gigs))
	for i := range gigs {
		rows[i] = gigs[i]
	}
	return ps.replaceAll(ctx, "gigs", `
		INSERT INTO gigs (id, title, description, category, location, phone,
			payment, payment_type, time_posted, urgent, distance, posted_by,
			posted_by_name, assigned_to, status, lat, lng, created_at)
		VALUES (:id, :title, :description, :category, :location, :phone,
			:payment, :payment_type, :time_posted, :urgent, :distance, :posted_by,
			:posted_by_name, :assigned_to, :status, :lat, :lng, :created_at)
	`, rows)
}

func (ps *PostgresStore) LoadUsers(ctx context.Context) []models.User {
	users := []models.User{}
	if err := ps.db.SelectContext(ctx, &users, `SELECT * FROM users`); err != nil {
		log.Printf("store: load users: %v", err)
		return []models.User{}
	}
	return users
}

func (ps *PostgresStore) SaveUsers(ctx context.Context, users []models.User) error {
	rows := make([]interface{}, len(users))
	for i := range users {
		rows[i] = users[i]
	}
	return ps.replaceAll(ctx, "users", `
		INSERT INTO users (id, name, email, phone, password, user_type,
			location, lat, lng, created_at)
		VALUES (:id, :name, :email, :phone, :password, :user_type,
			:location, :lat, :lng, :created_at)
	`, rows)
}

func (ps *PostgresStore) LoadReviews(ctx context.Context) []models.Review {
	reviews := []models.Review{}
	if err := ps.db.SelectContext(ctx, &reviews, `SELECT * FROM reviews`); err != nil {
		log.Printf("store: load reviews: %v", err)
		return []models.Review{}
	}
	return reviews
}

func (ps *PostgresStore) SaveReviews(ctx context.Context, reviews []models.Review) error {
	rows := make([]interface{}, len(reviews))
	for i := range reviews {
		rows[i] = reviews[i]
	}
	return ps.replaceAll(ctx, "reviews", `
		INSERT INTO reviews (id, gig_id, reviewee_id, reviewer_id,
			reviewee_name, reviewer_name, rating, comment, created_at)
		VALUES (:id, :gig_id, :reviewee_id, :reviewer_id,
			:reviewee_name, :reviewer_name, :rating, :comment, :created_at)
	`, rows)
}

func (ps *PostgresStore) LoadApplications(ctx context.Context) []models.Application {
	applications := []models.Application{}
	if err := ps.db.SelectContext(ctx, &applications, `SELECT * FROM applications`); err != nil {
		log.Printf("store: load applications: %v", err)
		return []models.Application{}
	}
	return applications
}

func (ps *PostgresStore) SaveApplications(ctx context.Context, applications []models.Application) error {
	rows := make([]interface{}, len(applications))
	for i := range applications {
		rows[i] = applications[i]
	}
	return ps.replaceAll(ctx, "applications", `
		INSERT INTO applications (id, gig_id, worker_id, message, created_at)
		VALUES (:id, :gig_id, :worker_id, :message, :created_at)
	`, rows)
}

func (ps *PostgresStore) Health(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}
