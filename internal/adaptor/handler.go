package adaptor

import (
	"net/http"

	"travel-reels/internal/data/entity"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Reel         *ReelHandler
	Team         *TeamHandler
	Verification *VerificationHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

// principalFrom rebuilds the Principal the auth middleware stored on the
// request context.
func principalFrom(r *http.Request) (entity.Principal, bool) {
	id, ok := utils.GetPrincipalIDFromContext(r.Context())
	if !ok {
		return entity.Principal{}, false
	}

	role, ok := utils.GetPrincipalRoleFromContext(r.Context())
	if !ok {
		return entity.Principal{}, false
	}

	return entity.Principal{ID: id, Role: entity.UserRole(role)}, true
}

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unclassified is a 500 with a generic body; the real cause goes to the log.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		utils.ResponseBadRequest(w, apperr.MessageOf(err), nil)
	case apperr.KindNotFound:
		utils.ResponseNotFound(w, apperr.MessageOf(err))
	case apperr.KindForbidden:
		utils.ResponseForbidden(w, apperr.MessageOf(err))
	case apperr.KindConflict:
		utils.ResponseConflict(w, apperr.MessageOf(err))
	default:
		log.Error("Request failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
