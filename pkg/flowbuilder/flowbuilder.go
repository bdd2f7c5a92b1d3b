package flowbuilder

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/internal/controllers"
	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/repository"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
)

// Start opens the database and draft store and serves the HTTP API.
// This call blocks until the HTTP server stops.
func Start(mux *http.ServeMux) error {
	db, err := repository.OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	clock := core.NewRealClock()
	draftsDir := config.GetSystemSettingString(config.DRAFTS_DIR)
	draftStore, err := drafts.Open(draftsDir, config.GetSystemSettingDuration(config.DRAFTS_TTL), clock, slog.Default())
	if err != nil {
		return err
	}
	defer draftStore.Close()

	definitionRepo := repository.NewWorkflowDefinitionRepository(db)
	userRepo := repository.NewUserRepository(db, clock)

	wfManager := engine.NewWorkflowManager(definitionRepo, draftStore, clock)
	userManager := engine.NewUserManager(userRepo, clock)

	if mux == nil {
		mux = http.NewServeMux()
	}
	RegisterRoutes(mux, wfManager, userManager)

	addr := ":" + config.GetSystemSettingString(config.SERVER_WEB_PORT)
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		addr = v
	}
	if !config.GetSystemSettingBool(config.AUTH_ENABLED) {
		slog.Warn("Authentication is disabled", "setting", config.AUTH_ENABLED)
	}
	slog.Info("Starting HTTP server", "addr", addr, "drafts_dir", draftsDir)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("HTTP server failed", "error", err)
		return err
	}
	return nil
}

// RegisterRoutes mounts every API controller on mux.
func RegisterRoutes(mux *http.ServeMux, wfManager *engine.WorkflowManager, userManager *engine.UserManager) {
	controllers.NewValidationController(wfManager, userManager).RegisterRoutes(mux)
	controllers.NewWorkflowsController(wfManager, userManager).RegisterRoutes(mux)
	controllers.NewDraftsController(wfManager, userManager).RegisterRoutes(mux)
	controllers.NewUsersController(userManager).RegisterRoutes(mux)
}

// SetupLogger installs a tint handler at the level named by FB_LOG_LEVEL.
func SetupLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.GetSystemSettingString(config.LOG_LEVEL))); err != nil {
		fmt.Fprintf(os.Stderr, "invalid %s, using info: %v\n", config.LOG_LEVEL, err)
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}
