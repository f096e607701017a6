// Package store provides the durable CredentialStore: a two-row key/value
// table in a local sqlite database, the desktop equivalent of the web
// client's localStorage entries for the bearer token and the cached profile.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

const (
	keyToken = "access_token"
	keyUser  = "current_user"
)

type credentialRow struct {
	bun.BaseModel `bun:"table:credentials"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

// Store is a CredentialStore backed by sqlite via bun. Write failures are
// logged and swallowed: the CredentialStore contract promises no-op
// degradation, never an error, so a broken disk reads as an absent session.
type Store struct {
	db     *bun.DB
	logger freeconnect.Logger
}

var _ freeconnect.CredentialStore = (*Store)(nil)

// Option customizes Store construction.
type Option func(*Store)

// WithLogger replaces the default stdout logger.
func WithLogger(logger freeconnect.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens (creating if needed) the credential database at path. Use
// ":memory:" for an ephemeral store in tests.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.NewCreateTable().
		Model((*credentialRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, logger: freeconnect.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Available reports true: once Open succeeded the medium exists. Individual
// operation failures degrade to absent values instead.
func (s *Store) Available() bool {
	return true
}

func (s *Store) SaveToken(ctx context.Context, token string) {
	s.set(ctx, keyToken, token)
}

func (s *Store) Token(ctx context.Context) (string, bool) {
	return s.get(ctx, keyToken)
}

func (s *Store) ClearToken(ctx context.Context) {
	s.clear(ctx, keyToken)
}

func (s *Store) SaveUser(ctx context.Context, user *freeconnect.User) {
	if user == nil {
		return
	}
	encoded, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("cannot encode user profile: %s", err)
		return
	}
	s.set(ctx, keyUser, string(encoded))
}

func (s *Store) User(ctx context.Context) (*freeconnect.User, bool) {
	raw, ok := s.get(ctx, keyUser)
	if !ok {
		return nil, false
	}
	user := &freeconnect.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		s.logger.Error("cannot decode cached user profile: %s", err)
		return nil, false
	}
	return user, true
}

func (s *Store) ClearUser(ctx context.Context) {
	s.clear(ctx, keyUser)
}

func (s *Store) set(ctx context.Context, key, value string) {
	row := credentialRow{Key: key, Value: value}
	if _, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx); err != nil {
		s.logger.Error("cannot persist credential %q: %s", key, err)
	}
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	row := credentialRow{}
	err := s.db.NewSelect().
		Model(&row).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("cannot read credential %q: %s", key, err)
		}
		return "", false
	}
	return row.Value, row.Value != ""
}

func (s *Store) clear(ctx context.Context, key string) {
	if _, err := s.db.NewDelete().
		Model((*credentialRow)(nil)).
		Where("key = ?", key).
		Exec(ctx); err != nil {
		s.logger.Error("cannot clear credential %q: %s", key, err)
	}
}
