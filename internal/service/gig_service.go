package service

import (
	"context"
	"time"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/store"
)

const fallbackLocation = "Bangalore, Karnataka"

type GigService interface {
	GetGig(ctx context.Context, id int64) (*models.Gig, error)
	CreateGig(ctx context.Context, req *models.CreateGigRequest) (*models.Gig, error)
	Apply(ctx context.Context, gigID int64, req *models.ApplyRequest) (*models.Application, error)
	Hire(ctx context.Context, gigID int64, req *models.HireRequest) (*models.Gig, error)
	Complete(ctx context.Context, gigID int64, req *models.CompleteGigRequest) (*models.Gig, error)
}

type gigService struct {
	store store.Store
}

func NewGigService(st store.Store) GigService {
	return &gigService{store: st}
}

func (s *gigService) GetGig(ctx context.Context, id int64) (*models.Gig, error) {
	gigs := s.store.LoadGigs(ctx)
	for i := range gigs {
		if gigs[i].ID == id {
			return &gigs[i], nil
		}
	}
	return nil, apperrors.ErrGigNotFound
}

func (s *gigService) CreateGig(ctx context.Context, req *models.CreateGigRequest) (*models.Gig, error) {
	users := s.store.LoadUsers(ctx)
	poster := findUser(users, req.PostedBy)
	if poster == nil {
		return nil, apperrors.ErrUserNotFound
	}

	gigs := s.store.LoadGigs(ctx)

	gig := models.Gig{
		ID:           maxGigID(gigs) + 1,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     firstNonEmpty(req.Location, poster.Location, fallbackLocation),
		Phone:        firstNonEmpty(req.Phone, poster.Phone),
		Payment:      req.Payment,
		PaymentType:  firstNonEmpty(req.PaymentType, models.PaymentTypeFixed),
		TimePosted:   "Just now",
		Urgent:       req.Urgent,
		PostedBy:     poster.ID,
		PostedByName: poster.Name,
		Status:       models.GigStatusOpen,
		Lat:          req.Lat,
		Lng:          req.Lng,
		CreatedAt:    time.Now(),
	}
	// coordinates default to the poster's registered position
	if gig.Lat == nil {
		gig.Lat = poster.Lat
	}
	if gig.Lng == nil {
		gig.Lng = poster.Lng
	}

	gigs = append([]models.Gig{gig}, gigs...)
	if err := s.store.SaveGigs(ctx, gigs); err != nil {
		return nil, err
	}

	return &gig, nil
}

func (s *gigService) Apply(ctx context.Context, gigID int64, req *models.ApplyRequest) (*models.Application, error) {
	gigs := s.store.LoadGigs(ctx)
	if findGig(gigs, gigID) == nil {
		return nil, apperrors.ErrGigNotFound
	}

	worker := findUser(s.store.LoadUsers(ctx), req.UserID)
	if worker == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !worker.IsWorker() {
		return nil, apperrors.ErrWorkerRoleRequired
	}

	applications := s.store.LoadApplications(ctx)
	for _, a := range applications {
		if a.GigID == gigID && a.WorkerID == req.UserID {
			return nil, apperrors.ErrAlreadyApplied
		}
	}

	application := models.Application{
		ID:        maxApplicationID(applications) + 1,
		GigID:     gigID,
		WorkerID:  req.UserID,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	applications = append(applications, application)
	if err := s.store.SaveApplications(ctx, applications); err != nil {
		return nil, err
	}

	return &application, nil
}

func (s *gigService) Hire(ctx context.Context, gigID int64, req *models.HireRequest) (*models.Gig, error) {
	worker := findUser(s.store.LoadUsers(ctx), req.UserID)
	if worker == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !worker.IsWorker() {
		return nil, apperrors.ErrWorkerRoleRequired
	}

	return s.transition(ctx, gigID, models.GigStatusAssigned, func(gig *models.Gig) {
		gig.AssignedTo = &worker.ID
	})
}

func (s *gigService) Complete(ctx context.Context, gigID int64, req *models.CompleteGigRequest) (*models.Gig, error) {
	gigs := s.store.LoadGigs(ctx)
	gig := findGig(gigs, gigID)
	if gig == nil {
		return nil, apperrors.ErrGigNotFound
	}
	if gig.PostedBy != req.UserID {
		return nil, apperrors.ErrNotGigOwner
	}

	return s.transition(ctx, gigID, models.GigStatusCompleted, nil)
}

// transition moves a gig through the status machine and persists the whole
// collection.
func (s *gigService) transition(ctx context.Context, gigID int64, newStatus string, mutate func(*models.Gig)) (*models.Gig, error) {
	gigs := s.store.LoadGigs(ctx)
	gig := findGig(gigs, gigID)
	if gig == nil {
		return nil, apperrors.ErrGigNotFound
	}

	if !gig.CanTransitionTo(newStatus) {
		return nil, apperrors.InvalidTransition(gig.Status, newStatus)
	}

	gig.Status = newStatus
	if mutate != nil {
		mutate(gig)
	}

	if err := s.store.SaveGigs(ctx, gigs); err != nil {
		return nil, err
	}

	updated := *gig
	return &updated, nil
}

func findGig(gigs []models.Gig, id int64) *models.Gig {
	for i := range gigs {
		if gigs[i].ID == id {
			return &gigs[i]
		}
	}
	return nil
}

func findUser(users []models.User, id int64) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func maxGigID(gigs []models.Gig) int64 {
	var max int64
	for _, g := range gigs {
		if g.ID > max {
			max = g.ID
		}
	}
	return max
}

func maxApplicationID(applications []models.Application) int64 {
	var max int64
	for _, a := range applications {
		if a.ID > max {
			max = a.ID
		}
	}
	return max
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
