package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// Svc is the settlement service shared by all handlers, set once at startup.
var Svc *business.Service

// Init wires the handlers to the settlement service.
func Init(svc *business.Service) {
	Svc = svc
}

// respondError maps a business error onto the HTTP status it deserves and
// writes the standard error body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, business.ErrUnauthorized),
		errors.Is(err, business.ErrNotCreator),
		errors.Is(err, business.ErrInvalidSignature):
		status = http.StatusForbidden
	case errors.Is(err, business.ErrInvalidStatus),
		errors.Is(err, business.ErrLaunchNotActive),
		errors.Is(err, business.ErrNotMigrated),
		errors.Is(err, business.ErrLaunchFailed),
		errors.Is(err, business.ErrPlatformPaused),
		errors.Is(err, business.ErrConfigExists),
		errors.Is(err, business.ErrNotStarted),
		errors.Is(err, business.ErrTimeWindowExpired),
		errors.Is(err, business.ErrTooEarlyToFinalize),
		errors.Is(err, business.ErrAlreadyClaimed),
		errors.Is(err, business.ErrStakeNotUnlocked):
		status = http.StatusConflict
	case errors.Is(err, business.ErrConfigMissing),
		errors.Is(err, business.ErrNoStakeFound),
		errors.Is(err, business.ErrNothingToClaim),
		errors.Is(err, business.ErrNoClaimableAmount):
		status = http.StatusNotFound
	case errors.Is(err, business.ErrInvalidStartTime),
		errors.Is(err, business.ErrInvalidTargetAmount),
		errors.Is(err, business.ErrInvalidDuration),
		errors.Is(err, business.ErrInvalidTokenAllocation),
		errors.Is(err, business.ErrInvalidPointsAmount),
		errors.Is(err, business.ErrInsufficientPoints),
		errors.Is(err, business.ErrInvalidContribution),
		errors.Is(err, business.ErrInvalidAmount),
		errors.Is(err, business.ErrInvalidStakeDuration),
		errors.Is(err, business.ErrCannotStakeZero),
		errors.Is(err, business.ErrInsufficientLiquidity):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
