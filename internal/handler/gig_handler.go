package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/service"
	"github.com/snapwork/snapwork/pkg/utils"
)

type GigHandler struct {
	discovery       service.DiscoveryService
	gigService      service.GigService
	defaultRadiusKm float64
	validate        *validator.Validate
}

func NewGigHandler(discovery service.DiscoveryService, gigService service.GigService, defaultRadiusKm float64) *GigHandler {
	return &GigHandler{
		discovery:       discovery,
		gigService:      gigService,
		defaultRadiusKm: defaultRadiusKm,
		validate:        validator.New(),
	}
}

func (h *GigHandler) RegisterRoutes(r chi.Router) {
	r.Get("/gigs", h.ListGigs)
	r.Get("/gigs/{id}", h.GetGig)
	r.Post("/gigs", h.CreateGig)
	r.Post("/gigs/{id}/apply", h.Apply)
	r.Post("/gigs/{id}/hire", h.Hire)
	r.Post("/gigs/{id}/complete", h.Complete)
}

// GET /api/gigs
func (h *GigHandler) ListGigs(w http.ResponseWriter, r *http.Request) {
	spec := parseQuerySpec(r, h.defaultRadiusKm)
	gigs := h.discovery.SearchGigs(r.Context(), spec)

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"gigs": gigs,
	})
}

// GET /api/gigs/{id}
func (h *GigHandler) GetGig(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "gig id is required")
		return
	}

	gig, err := h.gigService.GetGig(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"gig": gig,
	})
}

// POST /api/gigs
func (h *GigHandler) CreateGig(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	gig, err := h.gigService.CreateGig(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Created(w, map[string]interface{}{
		"message": "Gig posted successfully",
		"gig":     gig,
	})
}

// POST /api/gigs/{id}/apply
func (h *GigHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "gig id is required")
		return
	}

	var req models.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	application, err := h.gigService.Apply(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// POST /api/gigs/{id}/hire
func (h *GigHandler) Hire(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "gig id is required")
		return
	}

	var req models.HireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	gig, err := h.gigService.Hire(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Hire request submitted successfully",
		"gig":     gig,
	})
}

// POST /api/gigs/{id}/complete
func (h *GigHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		utils.BadRequest(w, "gig id is required")
		return
	}

	var req models.CompleteGigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	gig, err := h.gigService.Complete(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Gig marked as completed",
		"gig":     gig,
	})
}

func handleError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		utils.Error(w, apiErr)
		return
	}

	switch err {
	case apperrors.ErrGigNotFound:
		utils.NotFound(w, "gig")
	case apperrors.ErrUserNotFound:
		utils.Error(w, apperrors.BadRequest("user not found"))
	case apperrors.ErrEmailTaken:
		utils.Error(w, apperrors.EmailTaken())
	case apperrors.ErrInvalidCredentials:
		utils.Error(w, apperrors.InvalidCredentials())
	case apperrors.ErrAlreadyApplied:
		utils.Error(w, apperrors.AlreadyApplied())
	case apperrors.ErrAlreadyReviewed:
		utils.Error(w, apperrors.AlreadyReviewed())
	case apperrors.ErrWorkerRoleRequired:
		utils.Error(w, apperrors.Forbidden("only workers can do this"))
	case apperrors.ErrNotGigOwner:
		utils.Error(w, apperrors.Forbidden("only the gig poster can do this"))
	default:
		utils.InternalError(w, "internal server error")
	}
}
