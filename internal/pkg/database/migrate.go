package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// MigrationsDir é o diretório (dentro de Migrations) com os arquivos goose.
const MigrationsDir = "migrations"

// Migrations contém o schema versionado do museu.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Migrate executa um comando goose (up, down, status, redo, version...)
// sobre as migrações embutidas no binário.
func Migrate(db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}

	if err := goose.Run(command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
