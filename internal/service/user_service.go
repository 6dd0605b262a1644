package service

import (
	"context"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/store"
)

// UserProfile bundles a user with the gigs they are a party to.
type UserProfile struct {
	User *models.UserResponse `json:"user"`
	Gigs []models.Gig         `json:"gigs"`
}

type UserService interface {
	ListUsers(ctx context.Context) []*models.UserResponse
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
}

type userService struct {
	store store.Store
}

func NewUserService(st store.Store) UserService {
	return &userService{store: st}
}

func (s *userService) ListUsers(ctx context.Context) []*models.UserResponse {
	users := s.store.LoadUsers(ctx)

	out := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out
}

// GetProfile returns the user plus every gig they posted or applied to.
func (s *userService) GetProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	user := findUser(s.store.LoadUsers(ctx), userID)
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	appliedTo := map[int64]bool{}
	for _, a := range s.store.LoadApplications(ctx) {
		if a.WorkerID == userID {
			appliedTo[a.GigID] = true
		}
	}

	gigs := make([]models.Gig, 0)
	for _, g := range s.store.LoadGigs(ctx) {
		if g.PostedBy == userID || appliedTo[g.ID] {
			gigs = append(gigs, g)
		}
	}

	return &UserProfile{User: user.ToResponse(), Gigs: gigs}, nil
}
