package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// sessionRepository is the SQLite-backed implementation of [SessionStore].
// The session is stored as two rows of the "properties" table.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionStore] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession writes both keys in one transaction so a reader never sees a
// token paired with another user's ID.
func (r *sessionRepository) SaveSession(ctx context.Context, userID, userToken string) error {
	query, args, err := buildUpsertPropertiesQuery(ctx,
		property{key: propertyUserToken, value: userToken},
		property{key: propertyUserID, value: userID},
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().Str("user_id", userID).Msg("session saved")
	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildSelectPropertiesQuery(ctx, sessionKeys...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error building select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	props := make(map[string]string, len(sessionKeys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error scanning property row")
			return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		props[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	session := models.Session{UserID: props[propertyUserID], UserToken: props[propertyUserToken]}
	if session.UserID == "" || session.UserToken == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildDeletePropertiesQuery(ctx, sessionKeys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Debug().Msg("session cleared")
	return nil
}
