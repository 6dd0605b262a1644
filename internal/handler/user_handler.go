package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snapwork/snapwork/internal/service"
	"github.com/snapwork/snapwork/pkg/utils"
)

type UserHandler struct {
	userService     service.UserService
	discovery       service.DiscoveryService
	reviewService   service.ReviewService
	defaultRadiusKm float64
}

func NewUserHandler(userService service.UserService, discovery service.DiscoveryService, reviewService service.ReviewService, defaultRadiusKm float64) *UserHandler {
	return &UserHandler{
		userService:     userService,
		discovery:       discovery,
		reviewService:   reviewService,
		defaultRadiusKm: defaultRadiusKm,
	}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Get("/workers", h.ListWorkers)
	r.Get("/users/{id}/profile", h.GetProfile)
	r.Get("/users/{id}/reviews", h.GetReviews)
	r.Get("/users/{id}/completed-gigs", h.GetCompletedGigs)
}

// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.userService.ListUsers(r.Context())

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

// GET /api/workers
func (h *UserHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	spec := parseQuerySpec(r, h.defaultRadiusKm)
	workers := h.discovery.SearchWorkers(r.Context(), spec)

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"users": workers,
	})
}

// GET /api/users/{id}/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "user id is required")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		utils.NotFound(w, "user")
		return
	}

	utils.Success(w, http.StatusOK, profile)
}

// GET /api/users/{id}/reviews
func (h *UserHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "user id is required")
		return
	}

	reviews := h.reviewService.ReviewsForUser(r.Context(), id)

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	})
}

// GET /api/users/{id}/completed-gigs
func (h *UserHandler) GetCompletedGigs(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "user id is required")
		return
	}

	gigs := h.reviewService.CompletedGigsForUser(r.Context(), id)

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"gigs": gigs,
	})
}
