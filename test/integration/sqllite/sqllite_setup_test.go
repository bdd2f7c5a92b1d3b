package sqllite

import (
	"path/filepath"
	"testing"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
)

// setupSqlLiteTestInstance points the settings at a fresh database file.
func setupSqlLiteTestInstance(t *testing.T) {
	t.Setenv(config.DATABASE_TYPE, config.DATABASE_TYPE_SQLLITE)
	t.Setenv(config.DATABASE_SQLLITE_FILE_NAME, filepath.Join(t.TempDir(), "flowbuilder.db"))
}
