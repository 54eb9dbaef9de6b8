package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/visitas/app/models"
	"github.com/ManuelReschke/visitas/internal/pkg/counter"
)

// counterRepository implements the CounterRepository interface
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository instance
func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// Get returns the stored value of key or counter.ErrNotFound
func (r *counterRepository) Get(ctx context.Context, key string) (string, error) {
	var c models.Counter
	err := r.db.WithContext(ctx).Where("counter_key = ?", key).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", counter.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load counter %s: %w", key, err)
	}
	return c.Value, nil
}

// Set creates or updates the value of key in a single upsert, so two first
// loads of the same scope cannot both try to insert the row
func (r *counterRepository) Set(ctx context.Context, key, value string) error {
	c := models.Counter{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "counter_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&c).Error
	if err != nil {
		return fmt.Errorf("failed to save counter %s: %w", key, err)
	}
	return nil
}
