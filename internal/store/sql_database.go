package store

import (
	"database/sql"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/migrations"
)

// DB is the local session database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the properties schema up to date.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Debug().Str("func", "*DB.Migrate").Msg("session schema is up to date")
	return nil
}
