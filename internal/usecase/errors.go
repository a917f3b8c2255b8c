package usecase

import (
	"travel-reels/pkg/apperr"
)

// storageErr passes classified errors through untouched and wraps anything
// else as an upstream failure with a caller-facing message.
func storageErr(msg string, err error) error {
	if apperr.KindOf(err) != apperr.KindUnknown {
		return err
	}
	return apperr.Upstream(msg, err)
}
