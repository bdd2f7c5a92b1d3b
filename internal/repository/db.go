package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/internal/migrations"
)

// OpenDatabase migrates and opens the database selected by FB_DATABASE_TYPE.
func OpenDatabase() (*sql.DB, error) {
	switch config.DatabaseType() {
	case config.DATABASE_TYPE_POSTGRES:
		return setupPostgresDatabase()
	case config.DATABASE_TYPE_MYSQL:
		return setupMysqlDatabase()
	case config.DATABASE_TYPE_SQLLITE:
		return setupSqlLiteDatabase()
	}
	return nil, fmt.Errorf("%s must be set to one of the following values: POSTGRES, MYSQL, SQLLITE", config.DATABASE_TYPE)
}

func setupPostgresDatabase() (*sql.DB, error) {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		return nil, fmt.Errorf("%s must be set when using the POSTGRES database type", config.DATABASE_URL)
	}
	slog.Info("Using Postgres database")
	slog.Info("Running migrations")
	if err := RunMigrations("postgres", dbURL); err != nil {
		return nil, fmt.Errorf("postgres migration: %w", err)
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pingOrClose(db); err != nil {
		return nil, err
	}
	return db, nil
}

func setupSqlLiteDatabase() (*sql.DB, error) {
	fileName := config.GetSystemSettingString(config.DATABASE_SQLLITE_FILE_NAME)
	slog.Info("Using SQLite database", "file", fileName)
	slog.Info("Running migrations")
	if err := RunMigrations("sqllite3", "sqlite3://"+fileName); err != nil {
		return nil, fmt.Errorf("sqlite migration: %w", err)
	}
	db, err := sql.Open("sqlite3", fileName)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows one writer; a single connection avoids "database is locked".
	db.SetMaxOpenConns(1)
	if err := pingOrClose(db); err != nil {
		return nil, err
	}
	return db, nil
}

func setupMysqlDatabase() (*sql.DB, error) {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		return nil, fmt.Errorf("%s must be set when using the MYSQL database type", config.DATABASE_URL)
	}
	if !strings.Contains(dbURL, "parseTime=true") {
		return nil, fmt.Errorf("%s must contain 'parseTime=true' for MySQL", config.DATABASE_URL)
	}
	if !strings.HasPrefix(dbURL, "mysql://") {
		return nil, fmt.Errorf("%s must start with 'mysql://' for MySQL", config.DATABASE_URL)
	}
	slog.Info("Using MySQL database")
	slog.Info("Running migrations")
	if err := RunMigrations("mysql", dbURL); err != nil {
		return nil, fmt.Errorf("mysql migration: %w", err)
	}
	db, err := sql.Open("mysql", strings.TrimPrefix(dbURL, "mysql://"))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := pingOrClose(db); err != nil {
		return nil, err
	}
	return db, nil
}

func pingOrClose(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// RunMigrations applies the embedded migrations for one database type.
func RunMigrations(migrationsPath string, dbURL string) error {
	sub, err := fs.Sub(migrations.FS, migrationsPath)
	if err != nil {
		return err
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
