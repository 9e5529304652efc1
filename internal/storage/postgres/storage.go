package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/attivita/internal/domain/errors"
	"github.com/polkiloo/attivita/internal/domain/model"
	"github.com/polkiloo/attivita/internal/domain/repository"
)

// PgxPool is the subset of pgxpool.Pool used by the storage layer.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type activityRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Activities() repository.ActivityRepository {
	return &activityRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	// users.email deliberately carries no unique constraint: duplicate
	// registrations create distinct identities.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS attivita (
            id BIGSERIAL PRIMARY KEY,
            titolo TEXT NOT NULL DEFAULT '',
            descrizione TEXT NOT NULL DEFAULT '',
            scadenza TIMESTAMP NOT NULL,
            stato TEXT NOT NULL DEFAULT '',
            id_user TEXT NOT NULL REFERENCES users(id),
            version BIGINT NOT NULL DEFAULT 1
        )`,
		`CREATE INDEX IF NOT EXISTS idx_attivita_user ON attivita(id_user)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at`
	u := model.User{ID: model.NewUserID(), Email: email, PasswordHash: passwordHash}
	if err := r.storage.pool.QueryRow(ctx, query, u.ID, email, passwordHash).Scan(&u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email=$1 ORDER BY created_at LIMIT 1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// --- ActivityRepository implementation ---

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	const query = `INSERT INTO attivita (titolo, descrizione, scadenza, stato, id_user)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, version`
	created := *activity
	err := r.storage.pool.QueryRow(ctx, query,
		activity.Title, activity.Description, activity.Due, activity.Status, activity.UserID,
	).Scan(&created.ID, &created.Version)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	const query = `SELECT id, titolo, descrizione, scadenza, stato, id_user, version FROM attivita WHERE id=$1`
	var a model.Activity
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Title, &a.Description, &a.Due, &a.Status, &a.UserID, &a.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID string) ([]model.Activity, error) {
	const query = `SELECT id, titolo, descrizione, scadenza, stato, id_user, version
                   FROM attivita WHERE id_user=$1`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Due, &a.Status, &a.UserID, &a.Version); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites all mutable fields, guarded by the record version. A
// version mismatch on a still-existing row is a concurrency conflict; a
// missing row is not found.
func (r *activityRepository) Update(ctx context.Context, activity *model.Activity) error {
	const query = `UPDATE attivita
                   SET titolo=$1, descrizione=$2, scadenza=$3, stato=$4, id_user=$5, version=version+1
                   WHERE id=$6 AND version=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		activity.Title, activity.Description, activity.Due, activity.Status, activity.UserID,
		activity.ID, activity.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const existsQuery = `SELECT EXISTS(SELECT 1 FROM attivita WHERE id=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, existsQuery, activity.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domainErrors.ErrNotFound
	}
	return domainErrors.ErrConflict
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM attivita WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *activityRepository) DeleteOwned(ctx context.Context, id int64, userID string) (bool, error) {
	const query = `DELETE FROM attivita WHERE id=$1 AND id_user=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes raw connection pool for advanced use.
func (s *Storage) Pool() PgxPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
