// Package httpauth exposes the embedded identity provider's credential
// exchange over HTTP, so fulfillment operators obtain tokens from the same
// process that verifies them.
package httpauth

import (
	"errors"
	"net/http"

	"fulfillment/internal/identity"

	"github.com/labstack/echo/v4"
)

// tokenRequest is the JSON body of a POST /auth/token call.
type tokenRequest struct {
	ClientID string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse carries the signed token of a successful exchange.
type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Handler serves the credential exchange of the embedded identity provider.
type Handler struct {
	service *identity.Service
}

// NewHandler creates a handler around the identity service.
func NewHandler(service *identity.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the token endpoint on the given echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/token", h.handleToken)
}

func (h *Handler) handleToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	token, err := h.service.InitiateAuth(req.ClientID, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrValueIsMissing):
			return c.JSON(http.StatusBadRequest,
				errorResponse{Message: "clientId, username and password are required"})
		case errors.Is(err, identity.ErrClientNotFound):
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "unknown client"})
		case errors.Is(err, identity.ErrInvalidCredentials):
			// An unknown user and a wrong password read the same to callers.
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Message: "credential exchange failed"})
		}
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
