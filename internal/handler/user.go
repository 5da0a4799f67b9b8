package handler

import (
	"errors"
	"net/http"

	"github.com/linkstash/linkstash-go/internal/middleware"
	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/service"
)

// UserHandler handles HTTP requests for the user profile.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleMe handles GET /users/me requests. The guard already resolved the
// user, so this only reads the request context.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	email, _ := middleware.UserEmailFromContext(r.Context())

	writeJSON(w, http.StatusOK, model.MeResponse{
		ID:    userID,
		Email: email,
		User:  model.NewUserResponse(user),
	})
}

// HandleEdit handles PATCH /users requests.
func (h *UserHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.EditUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.EditUser(r.Context(), userID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
