package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "diet")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "jarosmart:jarosmart_pass@tcp(db.internal:3306)/diet?parseTime=true&charset=utf8mb4", cfg.DSN())
}

func TestLoad_TrustProxy(t *testing.T) {
	t.Setenv("TRUST_PROXY", "")
	assert.False(t, Load().TrustProxy)

	t.Setenv("TRUST_PROXY", "true")
	assert.True(t, Load().TrustProxy)

	t.Setenv("TRUST_PROXY", "maybe")
	assert.False(t, Load().TrustProxy)
}
