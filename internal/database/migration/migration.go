package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id          UUID        PRIMARY KEY,
  email       TEXT        NOT NULL,
  name        TEXT        NOT NULL,
  pronouns    TEXT        NOT NULL DEFAULT '',
  school      TEXT        NOT NULL DEFAULT '',
  company     TEXT        NOT NULL DEFAULT '',
  role        TEXT        NOT NULL DEFAULT '',
  city        TEXT        NOT NULL DEFAULT '',
  bio         TEXT        NOT NULL DEFAULT '',
  budget_min  INTEGER     NOT NULL DEFAULT 0 CHECK (budget_min >= 0),
  budget_max  INTEGER     NOT NULL DEFAULT 0 CHECK (budget_max >= 0),
  move_in     TIMESTAMPTZ,
  move_out    TIMESTAMPTZ,
  lifestyle   JSONB       NOT NULL DEFAULT '{}'::jsonb,
  avatar_key  TEXT        NOT NULL DEFAULT '',
  onboarded   BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_profiles_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_email ON profiles (lower(email));`,
	},
	{
		Name: "create_index_profiles_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles (created_at);`,
	},
	{
		Name: "create_table_saved_listings",
		SQL: `CREATE TABLE IF NOT EXISTS saved_listings (
  user_id     UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  listing_id  TEXT        NOT NULL,
  listing     JSONB       NOT NULL,
  saved_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, listing_id)
);`,
	},
	{
		Name: "create_table_listing_interests",
		SQL: `CREATE TABLE IF NOT EXISTS listing_interests (
  listing_id  TEXT        NOT NULL,
  user_id     UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  note        TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (listing_id, user_id)
);`,
	},
	{
		Name: "create_index_listing_interests_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_listing_interests_user ON listing_interests (user_id, created_at);`,
	},
}

// EnsureMigrated checks if the 'profiles' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = logging.Component(log, "database").With(slog.String("db_host", dbHost))

	log.Info("db_migration_check", slog.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.profiles') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			slog.String("status", "error"),
			slog.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			slog.String("status", "success"),
			slog.String("detail", "schema already exists, skipping migration"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", slog.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				slog.String("status", "error"),
				slog.String("migration_step", step.Name),
				slog.String("error_message", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			slog.String("status", "success"),
			slog.String("migration_step", step.Name),
			slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		slog.String("status", "success"),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
