package repository

import (
	"context"
	"database/sql"
	"errors"

	"part-tracker/core/models"
)

// PlantRepository handles database operations for plants
type PlantRepository struct {
	db *DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// ListPlants returns all plants ordered by name
func (r *PlantRepository) ListPlants(ctx context.Context) ([]models.Plant, error) {
	query := `SELECT id, name, location, created_at FROM plants ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plants := []models.Plant{}
	for rows.Next() {
		var plant models.Plant
		if err := rows.Scan(&plant.ID, &plant.Name, &plant.Location, &plant.CreatedAt); err != nil {
			return nil, err
		}
		plants = append(plants, plant)
	}

	return plants, rows.Err()
}

// GetPlant retrieves a plant by ID
func (r *PlantRepository) GetPlant(ctx context.Context, id string) (*models.Plant, error) {
	query := `SELECT id, name, location, created_at FROM plants WHERE id = $1`

	var plant models.Plant
	err := r.db.QueryRowContext(ctx, query, id).Scan(&plant.ID, &plant.Name, &plant.Location, &plant.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &plant, nil
}
