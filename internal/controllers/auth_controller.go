package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
)

type AuthController struct {
	Users *engine.UserManager
}

func NewBaseController(users *engine.UserManager) *AuthController {
	return &AuthController{Users: users}
}

// RequireAuth accepts an X-API-Key header or HTTP Basic credentials. With
// FB_AUTH_ENABLED=false every request passes through.
func (wc *AuthController) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !config.GetSystemSettingBool(config.AUTH_ENABLED) {
			next(w, r)
			return
		}

		var (
			u   *domain.User
			err error
		)
		if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
			u, err = wc.Users.AuthenticateApiKey(apiKey)
		} else if username, password, ok := r.BasicAuth(); ok {
			u, err = wc.Users.Authenticate(username, password)
		} else {
			w.Header().Set("WWW-Authenticate", `Basic realm="flowbuilder"`)
			util.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if err != nil || u == nil {
			if err != nil && !errors.Is(err, engine.ErrInvalidPassword) {
				slog.ErrorContext(r.Context(), "Authentication lookup failed", "error", err)
			}
			util.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// Add the username to the request context
		ctx := context.WithValue(r.Context(), core.CtxKeyUsername, u.Username)
		next(w, r.WithContext(ctx))
	}
}
