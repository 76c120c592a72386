// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

// buildSetItemQuery builds an upsert: a second write to the same key replaces
// the value and bumps updated_at.
func buildSetItemQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(localStorageTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildDeleteItemQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
