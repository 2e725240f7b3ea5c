package cli

import (
	"context"
	"fmt"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/config"

	"github.com/juju/errors"
)

type staffCreator interface {
	CreateStaff(ctx context.Context, username, passwordHash string) (int64, error)
}

// bootstrapStaff creates the configured first staff account. An account that
// already exists is left alone, password included.
func bootstrapStaff(ctx context.Context, s staffCreator, cfg *config.Config) (bool, error) {
	if cfg.StaffBootstrapUsername == "" {
		return false, nil
	}
	hash, err := auth.HashPassword(cfg.StaffBootstrapPassword)
	if err != nil {
		return false, fmt.Errorf("STAFF_BOOTSTRAP_PASSWORD: %w", err)
	}
	_, err = s.CreateStaff(ctx, cfg.StaffBootstrapUsername, hash)
	if errors.Is(err, errors.AlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
