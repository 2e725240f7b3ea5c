package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/juju/errors"
)

// StaffMember is a shop employee allowed to change stock.
type StaffMember struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateStaff registers a staff member with an already hashed password.
func (s *Store) CreateStaff(ctx context.Context, username, passwordHash string) (int64, error) {
	query := `
        INSERT INTO staff (username, password_hash)
        VALUES ($1, $2)
        RETURNING id
    `
	var id int64
	err := s.db.QueryRowContext(ctx, query, username, passwordHash).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errors.AlreadyExistsf("staff member %q", username)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create staff member: %w", err)
	}
	return id, nil
}

// GetStaffByUsername finds a staff member for login.
func (s *Store) GetStaffByUsername(ctx context.Context, username string) (*StaffMember, error) {
	query := `
        SELECT id, username, password_hash, created_at
        FROM staff
        WHERE username = $1
    `
	var m StaffMember
	err := s.db.QueryRowContext(ctx, query, username).Scan(&m.ID, &m.Username, &m.PasswordHash, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("staff member %q", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &m, nil
}
