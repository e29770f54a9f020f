package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ridewave/dispatch/internal/pkg/database"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// DispatchRepo implements the dispatch persistence interface on PostgreSQL
// with a Redis position cache.
type DispatchRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewDispatchRepo creates a new dispatch repository instance
func NewDispatchRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *DispatchRepo {
	return &DispatchRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}
