package handlers

import (
	"errors"
	"net/http"
	"repairhub/internal/adapter/http/middleware"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"
	"repairhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errGatewayDisabled  = pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	errInternalFallback = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// mapError translates usecase and domain errors into the HTTP envelope. The
// specific errors come first; the error kinds are the fallback.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerWalletNotFound), errors.Is(err, usecase.ErrTechnicianWalletNotFound), errors.Is(err, usecase.ErrWalletNotFound):
		return pkg.NewDomainErrorSimple("WALLET_NOT_FOUND", "Wallet not found", http.StatusNotFound).WithDetail(err)
	case errors.Is(err, usecase.ErrWalletAlreadyExists):
		return pkg.NewDomainErrorSimple("WALLET_ALREADY_EXISTS", "Wallet already exists for this user", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return errGatewayDisabled

	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrUnauthorized):
		return pkg.NewDomainError("FORBIDDEN", "Operation not allowed for this user", err, http.StatusForbidden)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", "Operation not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidData):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientFunds):
		return pkg.NewDomainError("INSUFFICIENT_FUNDS", "Insufficient funds", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The resource was modified concurrently, retry the operation", err, http.StatusConflict)
	default:
		return pkg.NewDomainError(errInternalFallback.Code, errInternalFallback.Message, err, errInternalFallback.HTTPStatus)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeAppError(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}
