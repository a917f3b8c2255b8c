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

type TeamHandler struct {
	service usecase.TeamService
	log     *zap.Logger
}

func NewTeamHandler(service usecase.TeamService, log *zap.Logger) *TeamHandler {
	return &TeamHandler{
		service: service,
		log:     log.With(zap.String("handler", "team")),
	}
}

func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.AddMember(r.Context(), principal, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Team member added", resp)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListTeam(r.Context(), principal)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Team members", resp)
}

func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.RemoveMember(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Team member removed", nil)
}

func (h *TeamHandler) Managing(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListManaging(r.Context(), principal)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Managed hosts", resp)
}
