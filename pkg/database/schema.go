package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Migrate creates the tables both services need. Every statement is idempotent.
func Migrate(ctx context.Context, db PgxIface, log *zap.Logger) error {
	statements := []string{
		createBookingsTable,
		createBookingsEmailIndex,
		createUsersTable,
		createSessionsTable,
		createSessionsUserIndex,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	log.Info("Database schema ready", zap.Int("steps", len(statements)))
	return nil
}

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    special_requests TEXT NOT NULL DEFAULT '',
    hotel_id TEXT NOT NULL DEFAULT '',
    hotel_name TEXT NOT NULL DEFAULT '',
    hotel_address TEXT NOT NULL DEFAULT '',
    check_in TEXT NOT NULL DEFAULT '',
    check_out TEXT NOT NULL DEFAULT '',
    nights INTEGER NOT NULL DEFAULT 0,
    guests INTEGER NOT NULL DEFAULT 0,
    rooms INTEGER NOT NULL DEFAULT 0,
    room_description TEXT NOT NULL DEFAULT '',
    total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
    payment_reference TEXT NOT NULL DEFAULT '',
    paid BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createBookingsEmailIndex = `
CREATE INDEX IF NOT EXISTS idx_bookings_email ON bookings (email, created_at DESC);`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    token UUID NOT NULL UNIQUE,
    user_agent TEXT,
    ip_address TEXT,
    expires_at TIMESTAMPTZ NOT NULL,
    revoked_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createSessionsUserIndex = `
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions (user_id);`
