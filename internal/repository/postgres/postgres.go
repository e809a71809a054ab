package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/medibook/hospital-api/internal/repository"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sqlx.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

type appointmentRepository struct {
	BaseRepository
}

type healthRecordRepository struct {
	BaseRepository
}

type healthProfileRepository struct {
	BaseRepository
}

type userRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

func NewHealthRecordRepository(db *sqlx.DB) repository.HealthRecordRepository {
	return &healthRecordRepository{NewBaseRepository(db)}
}

func NewHealthProfileRepository(db *sqlx.DB) repository.HealthProfileRepository {
	return &healthProfileRepository{NewBaseRepository(db)}
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}
