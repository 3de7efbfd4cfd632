package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_vendors",
		SQL: `CREATE TABLE IF NOT EXISTS vendors (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  risk_profile TEXT,
  status       TEXT,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_contracts",
		SQL: `CREATE TABLE IF NOT EXISTS contracts (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title              TEXT        NOT NULL,
  vendor_id          UUID        REFERENCES vendors (id),
  owner              TEXT        NOT NULL,
  state              TEXT        NOT NULL,
  effective_date     TEXT,
  termination_date   TEXT,
  notice_period_days INTEGER,
  renewal_intent     TEXT,
  sensitive          BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  contract_id  UUID        NOT NULL REFERENCES contracts (id),
  filename     TEXT        NOT NULL,
  storage_name TEXT        NOT NULL UNIQUE,
  version      INTEGER     NOT NULL CHECK (version >= 1),
  uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  sha256       CHAR(64)    NOT NULL,
  CONSTRAINT documents_contract_version_unique UNIQUE (contract_id, version)
);`,
	},
	{
		Name: "create_table_extractions",
		SQL: `CREATE TABLE IF NOT EXISTS extractions (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  contract_id      UUID        NOT NULL REFERENCES contracts (id),
  extracted_fields TEXT        NOT NULL,
  status           TEXT        NOT NULL,
  approver         TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_tags",
		SQL: `CREATE TABLE IF NOT EXISTS tags (
  id   UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  name TEXT NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_contract_tags",
		SQL: `CREATE TABLE IF NOT EXISTS contract_tags (
  contract_id UUID NOT NULL REFERENCES contracts (id),
  tag_id      UUID NOT NULL REFERENCES tags (id),
  PRIMARY KEY (contract_id, tag_id)
);`,
	},
	{
		Name: "create_table_audit_events",
		SQL: `CREATE TABLE IF NOT EXISTS audit_events (
  id          BIGSERIAL   PRIMARY KEY,
  contract_id UUID        REFERENCES contracts (id),
  action      TEXT        NOT NULL,
  actor       TEXT        NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  details     TEXT
);`,
	},
	{
		Name: "create_index_contracts_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_updated_at ON contracts (updated_at);`,
	},
	{
		Name: "create_index_contracts_state",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_state ON contracts (state);`,
	},
	{
		Name: "create_index_documents_contract_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_contract_id ON documents (contract_id);`,
	},
	{
		Name: "create_index_audit_events_contract_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_audit_events_contract_id ON audit_events (contract_id);`,
	},
	{
		Name: "create_index_audit_events_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_audit_events_created_at ON audit_events (created_at);`,
	},
}

// EnsureMigrated checks for the 'contracts' sentinel table and applies the
// schema when it is missing. Steps run in order; every step is IF NOT EXISTS
// so a partially applied schema can be completed on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.contracts') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
