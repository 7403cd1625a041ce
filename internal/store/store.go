// Package store persists users, drawings and drawing snapshots in Postgres.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Init creates the schema when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
	id           TEXT PRIMARY KEY,
	email        TEXT NOT NULL UNIQUE,
	password     TEXT NOT NULL,
	display_name TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS drawings (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	owner_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS drawing_snapshots (
	id         TEXT PRIMARY KEY,
	drawing_id TEXT NOT NULL REFERENCES drawings(id) ON DELETE CASCADE,
	version    INTEGER NOT NULL,
	document   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (drawing_id, version)
);`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// --- users ---

type User struct {
	ID          string
	Email       string
	Password    string
	DisplayName string
}

func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, password, display_name) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.Password, u.DisplayName)
	if err != nil {
		if isDuplicateKeyError(err) {
			return User{}, ErrDuplicate
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password, display_name FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password, display_name FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// --- drawings ---

type Drawing struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) CreateDrawing(ctx context.Context, d Drawing) (Drawing, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO drawings (id, name, owner_id) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		d.ID, d.Name, d.OwnerID).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return Drawing{}, fmt.Errorf("create drawing: %w", err)
	}
	return d, nil
}

func (s *Store) GetDrawing(ctx context.Context, id string) (Drawing, error) {
	var d Drawing
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, owner_id, created_at, updated_at FROM drawings WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Drawing{}, ErrNotFound
		}
		return Drawing{}, fmt.Errorf("get drawing: %w", err)
	}
	return d, nil
}

func (s *Store) ListDrawingsForUser(ctx context.Context, ownerID string) ([]Drawing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, owner_id, created_at, updated_at
		 FROM drawings WHERE owner_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list drawings: %w", err)
	}
	defer rows.Close()

	var out []Drawing
	for rows.Next() {
		var d Drawing
		if err := rows.Scan(&d.ID, &d.Name, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan drawing: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) RenameDrawing(ctx context.Context, id, name string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE drawings SET name = $2, updated_at = now() WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("rename drawing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteDrawing(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM drawings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete drawing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- snapshots ---

type Snapshot struct {
	ID        string
	DrawingID string
	Version   int32
	Document  json.RawMessage
	CreatedAt time.Time
}

func (s *Store) CreateSnapshot(ctx context.Context, snap Snapshot) (Snapshot, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO drawing_snapshots (id, drawing_id, version, document)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		snap.ID, snap.DrawingID, snap.Version, snap.Document).Scan(&snap.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return Snapshot{}, ErrDuplicate
		}
		return Snapshot{}, fmt.Errorf("create snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) LatestSnapshot(ctx context.Context, drawingID string) (Snapshot, error) {
	var snap Snapshot
	err := s.pool.QueryRow(ctx,
		`SELECT id, drawing_id, version, document, created_at
		 FROM drawing_snapshots WHERE drawing_id = $1
		 ORDER BY version DESC LIMIT 1`, drawingID).
		Scan(&snap.ID, &snap.DrawingID, &snap.Version, &snap.Document, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("get latest snapshot: %w", err)
	}
	return snap, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
