package db

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id            CHAR(36) PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
	},
	{
		version: "001_create_historico_peso",
		sql: `
			CREATE TABLE IF NOT EXISTS historico_peso (
				id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				usuario_id CHAR(36) NOT NULL,
				peso       DOUBLE NOT NULL,
				fecha      CHAR(10) NOT NULL,
				notas      TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_historico_peso_usuario_fecha (usuario_id, fecha),
				FOREIGN KEY (usuario_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "002_create_preferencias_usuario",
		sql: `
			CREATE TABLE IF NOT EXISTS preferencias_usuario (
				usuario_id               CHAR(36) PRIMARY KEY,
				objetivo                 VARCHAR(100) NOT NULL DEFAULT '',
				preferencia_dietetica    VARCHAR(100) NOT NULL DEFAULT '',
				restricciones_dieteticas TEXT,
				updated_at               DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (usuario_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "003_create_ingredientes",
		sql: `
			CREATE TABLE IF NOT EXISTS ingredientes (
				id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				usuario_id CHAR(36) NOT NULL,
				nombre     VARCHAR(150) NOT NULL,
				categoria  VARCHAR(100),
				comida     VARCHAR(50),
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_ingredientes_usuario_nombre (usuario_id, nombre),
				FOREIGN KEY (usuario_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "004_create_perfil_usuario",
		sql: `
			CREATE TABLE IF NOT EXISTS perfil_usuario (
				usuario_id      CHAR(36) PRIMARY KEY,
				nombre          VARCHAR(100),
				peso_actual     DOUBLE,
				peso_objetivo   DOUBLE,
				altura          INT,
				edad            INT,
				genero          VARCHAR(20),
				nivel_actividad VARCHAR(30),
				updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (usuario_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
}

func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(db, m); err != nil {
			return err
		}

		logger.Info("applied migration", zap.String("version", m.version))
	}

	return nil
}

func isMigrationApplied(db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
