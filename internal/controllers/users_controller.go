package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
)

type UsersController struct {
	AuthController
}

func NewUsersController(users *engine.UserManager) *UsersController {
	return &UsersController{AuthController: AuthController{Users: users}}
}

// handleGetUsers returns all users
func (c *UsersController) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers()
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to get users", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, users)
}

// handleCreateUser creates a new user
func (c *UsersController) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.CreateUserRequest](r)
	if err != nil {
		slog.WarnContext(r.Context(), "Failed to decode user", "error", err)
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := c.Users.CreateUser(r.Context(), req.Username, req.Password, req.ApiKey)
	switch {
	case errors.Is(err, engine.ErrInvalidUser), errors.Is(err, engine.ErrUserExists):
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Failed to create user", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	util.WriteJSONResponse(w, http.StatusCreated, user)
}
