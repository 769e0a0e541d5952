// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

const (
	propertiesTable = "properties"

	propertyUserToken = "userToken"
	propertyUserID    = "userId"
)

// sessionKeys lists the properties making up a persisted session.
var sessionKeys = []string{propertyUserToken, propertyUserID}

type property struct {
	key   string
	value string
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertPropertiesQuery(_ context.Context, props ...property) (string, []any, error) {
	q := psql.Insert(propertiesTable).Columns("key", "value")
	for _, p := range props {
		q = q.Values(p.key, p.value)
	}

	return q.Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildSelectPropertiesQuery(_ context.Context, keys ...string) (string, []any, error) {
	return psql.Select("key", "value").
		From(propertiesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildDeletePropertiesQuery(_ context.Context, keys ...string) (string, []any, error) {
	return psql.Delete(propertiesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}
