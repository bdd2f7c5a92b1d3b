package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

type WorkflowDefinitionRepository struct {
	db *sql.DB
}

func NewWorkflowDefinitionRepository(db *sql.DB) *WorkflowDefinitionRepository {
	return &WorkflowDefinitionRepository{db: db}
}

// Save inserts a new workflow definition or updates an existing one by name.
// The created timestamp of an existing definition is kept.
func (r *WorkflowDefinitionRepository) Save(def *domain.WorkflowDefinition) error {
	insert := `
		INSERT INTO workflow_definitions (name, description, created, updated, graph)
		VALUES (` + placeholders(5) + `)`

	var query string
	switch config.DatabaseType() {
	case config.DATABASE_TYPE_POSTGRES, config.DATABASE_TYPE_SQLLITE:
		query = insert + `
		ON CONFLICT (name)
		DO UPDATE SET description = EXCLUDED.description,
			updated = EXCLUDED.updated,
			graph = EXCLUDED.graph`
	case config.DATABASE_TYPE_MYSQL:
		query = insert + `
		ON DUPLICATE KEY UPDATE description = VALUES(description),
			updated = VALUES(updated),
			graph = VALUES(graph)`
	default:
		return fmt.Errorf("unknown database type %q trying to save workflow definition", config.DatabaseType())
	}

	_, err := r.db.Exec(query, def.Name, def.Description, def.Created.UTC(), def.Updated.UTC(), def.Graph)
	return err
}

// FindByName fetches a workflow definition by its unique name. Returns (nil, nil) if not found.
func (r *WorkflowDefinitionRepository) FindByName(name string) (*domain.WorkflowDefinition, error) {
	query := `
		SELECT name, description, created, updated, graph
		FROM workflow_definitions WHERE name = ` + placeholder(1)

	var def domain.WorkflowDefinition
	err := r.db.QueryRow(query, name).Scan(
		&def.Name,
		&def.Description,
		&def.Created,
		&def.Updated,
		&def.Graph,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// FindAll returns all workflow definitions ordered by name.
func (r *WorkflowDefinitionRepository) FindAll() ([]domain.WorkflowDefinition, error) {
	query := `
		SELECT name, description, created, updated, graph
		FROM workflow_definitions
		ORDER BY name
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := make([]domain.WorkflowDefinition, 0)
	for rows.Next() {
		var d domain.WorkflowDefinition
		if err := rows.Scan(&d.Name, &d.Description, &d.Created, &d.Updated, &d.Graph); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return defs, nil
}

// DeleteByName removes a definition and reports whether a row was deleted.
func (r *WorkflowDefinitionRepository) DeleteByName(name string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM workflow_definitions WHERE name = `+placeholder(1), name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
