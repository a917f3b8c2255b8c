package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-reels/internal/dto/request"
	"travel-reels/internal/usecase"
	"travel-reels/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateReview(r.Context(), principal, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Review created", resp)
}

func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReplyReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.ReplyReview(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reply saved", resp)
}

func (h *ReviewHandler) ListByReel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListByReel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews", resp)
}

func (h *ReviewHandler) ListForHost(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hostID, errMsg := hostIDParam(r, principal.ID)
	if errMsg != "" {
		utils.ResponseBadRequest(w, errMsg, nil)
		return
	}

	resp, err := h.service.ListForHost(r.Context(), principal, hostID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews", resp)
}
