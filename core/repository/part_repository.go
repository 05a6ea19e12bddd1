package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"part-tracker/core/models"

	"github.com/google/uuid"
)

const partColumns = `id, part_id, name, description, priority, status, plant_id, created_at`

// PartRepository handles database operations for parts
type PartRepository struct {
	db *DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *DB) *PartRepository {
	return &PartRepository{db: db}
}

// buildListPartsQuery scopes the parts listing to a plant when plantID is set
func buildListPartsQuery(plantID string) (string, []interface{}) {
	query := `SELECT ` + partColumns + ` FROM parts`
	var args []interface{}

	if plantID != "" {
		args = append(args, plantID)
		query += fmt.Sprintf(" WHERE plant_id = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"
	return query, args
}

// ListParts returns parts newest first, optionally scoped to a plant
func (r *PartRepository) ListParts(ctx context.Context, plantID string) ([]models.Part, error) {
	query, args := buildListPartsQuery(plantID)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := []models.Part{}
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, *part)
	}

	return parts, rows.Err()
}

// GetPart retrieves a part by its row ID
func (r *PartRepository) GetPart(ctx context.Context, id string) (*models.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`

	part, err := scanPart(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return part, err
}

// CreatePart inserts a new part, assigning its ID and creation time
func (r *PartRepository) CreatePart(ctx context.Context, part *models.Part) error {
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if part.ID == "" {
		part.ID = uuid.New().String()
	}
	if part.Status == "" {
		part.Status = models.PartStatusInitiated
	}
	part.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		part.ID,
		part.PartID,
		part.Name,
		part.Description,
		part.Priority,
		part.Status,
		part.PlantID,
		part.CreatedAt,
	)
	return err
}

// UpdatePartStatus sets the status of a part and returns the updated row
func (r *PartRepository) UpdatePartStatus(ctx context.Context, id string, status models.PartStatus) (*models.Part, error) {
	query := `UPDATE parts SET status = $1 WHERE id = $2 RETURNING ` + partColumns

	part, err := scanPart(r.db.QueryRowContext(ctx, query, status, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return part, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPart(row rowScanner) (*models.Part, error) {
	var part models.Part
	err := row.Scan(
		&part.ID,
		&part.PartID,
		&part.Name,
		&part.Description,
		&part.Priority,
		&part.Status,
		&part.PlantID,
		&part.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &part, nil
}
