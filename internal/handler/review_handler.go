package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/service"
	"github.com/snapwork/snapwork/pkg/utils"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validate      *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reviews", h.CreateReview)
}

// POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Created(w, map[string]interface{}{
		"message": "Review submitted successfully",
		"review":  review,
	})
}
