package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/imovia/api/internal/database"
	"github.com/imovia/api/internal/models"
)

const userColumns = `
	id, full_name, phone, username, password_hash, role, created_at, updated_at`

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// FindAll returns every user in creation order.
	FindAll(ctx context.Context) ([]models.User, error)

	// FindByID returns the user with the given id.
	// Returns nil, nil if no user is found (not an error).
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByUsername returns the user with the given username.
	// Returns nil, nil if no user is found (not an error).
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Insert stores a new user.
	Insert(ctx context.Context, u *models.User) error

	// Update replaces the stored record keyed by u.ID.
	Update(ctx context.Context, u *models.User) error

	// Delete removes the user with the given id. Returns whether a row
	// was actually deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// userRepository is the concrete implementation of UserRepository.
type userRepository struct {
	db *database.Database
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var role string

	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Phone,
		&u.Username,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Unknown stored roles stay unknown; permission code denies them.
	u.Role = models.ParseRole(role)
	return &u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		ORDER BY created_at, id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE id = $1`

	u, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user %s: %w", id, err)
	}
	return u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT` + userColumns + `
		FROM users
		WHERE username = $1`

	u, err := scanUser(r.db.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user by username: %w", err)
	}
	return u, nil
}

func (r *userRepository) Insert(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, full_name, phone, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Pool.Exec(ctx, query,
		u.ID, u.FullName, u.Phone, u.Username, u.PasswordHash,
		string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *models.User) error {
	query := `
		UPDATE users SET
			full_name = $2, phone = $3, username = $4, password_hash = $5,
			role = $6, updated_at = $7
		WHERE id = $1`

	_, err := r.db.Pool.Exec(ctx, query,
		u.ID, u.FullName, u.Phone, u.Username, u.PasswordHash,
		string(u.Role), u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", u.ID, err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
