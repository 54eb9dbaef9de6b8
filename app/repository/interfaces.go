package repository

import (
	"context"

	"gorm.io/gorm"
)

// CounterRepository defines the persistence operations of view counters.
// It satisfies counter.Store.
type CounterRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Counter CounterRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Counter: NewCounterRepository(db),
	}
}
