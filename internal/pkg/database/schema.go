package database

import (
	"database/sql"
	"fmt"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS positions (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	description VARCHAR(500),
	base_salary NUMERIC(12,2) NOT NULL,
	level VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS employees (
	id BIGSERIAL PRIMARY KEY,
	employee_number VARCHAR(20) NOT NULL UNIQUE,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(150) UNIQUE,
	phone VARCHAR(20),
	hire_date DATE,
	current_salary NUMERIC(12,2),
	active BOOLEAN NOT NULL DEFAULT TRUE,
	position_id BIGINT NOT NULL REFERENCES positions(id)
);

CREATE INDEX IF NOT EXISTS idx_employees_position ON employees(position_id);
CREATE INDEX IF NOT EXISTS idx_employees_active ON employees(active);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS positions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	description TEXT,
	base_salary TEXT NOT NULL,
	level TEXT
);

CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_number TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT UNIQUE,
	phone TEXT,
	hire_date TEXT,
	current_salary TEXT,
	active INTEGER NOT NULL DEFAULT 1,
	position_id INTEGER NOT NULL REFERENCES positions(id)
);

CREATE INDEX IF NOT EXISTS idx_employees_position ON employees(position_id);
CREATE INDEX IF NOT EXISTS idx_employees_active ON employees(active);
`

// createSchema creates the two tables on whichever engine was opened.
// The DDL is dialect-specific; the column names and constraints are not.
func createSchema(db *sql.DB, engine Engine) error {
	var schema string
	switch engine {
	case EnginePostgres:
		schema = postgresSchema
	case EngineSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unknown engine %q", engine)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
