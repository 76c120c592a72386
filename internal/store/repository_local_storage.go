package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meal-log/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalStorageRepository constructs a [LocalStorageRepository] backed by
// the local_storage table of db.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorageRepository {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localStorageRepository) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.GetItem").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.GetItem").
			Str("key", key).
			Msg("failed to read local storage item")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (l *localStorageRepository) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetItemQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.SetItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.SetItem").
			Str("key", key).
			Msg("failed to upsert local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStorageRepository) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.RemoveItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.RemoveItem").
			Str("key", key).
			Msg("failed to delete local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
