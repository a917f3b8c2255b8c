package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-reels/internal/dto/request"
	"travel-reels/internal/usecase"
	"travel-reels/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReelHandler struct {
	service usecase.ReelService
	log     *zap.Logger
}

func NewReelHandler(service usecase.ReelService, log *zap.Logger) *ReelHandler {
	return &ReelHandler{
		service: service,
		log:     log.With(zap.String("handler", "reel")),
	}
}

func (h *ReelHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateReel(r.Context(), principal, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Reel published", resp)
}

func (h *ReelHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetReel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reel", resp)
}

func (h *ReelHandler) ListForHost(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.GetHostReels(r.Context(), principal, hostID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reels", resp)
}

func (h *ReelHandler) Analytics(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.GetHostAnalytics(r.Context(), principal, hostID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Analytics", resp)
}

func (h *ReelHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateReelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateReel(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reel updated", resp)
}

func (h *ReelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteReel(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reel deleted", nil)
}

// View is public: impressions count whether or not the viewer is logged in.
func (h *ReelHandler) View(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.RecordView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "View recorded", resp)
}

func (h *ReelHandler) Like(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ToggleLike(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Like updated", resp)
}

// hostIDParam reads the optional host_id query, defaulting to own.
func hostIDParam(r *http.Request, own uuid.UUID) (uuid.UUID, string) {
	raw := r.URL.Query().Get("host_id")
	if raw == "" {
		return own, ""
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "Invalid host id"
	}
	return parsed, ""
}
