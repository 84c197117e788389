package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "vibeflow", cfg.MongoDatabase)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("VIBEFLOW_PORT", "9999")
	t.Setenv("VIBEFLOW_MONGO_URI", "mongodb://db:27017")
	t.Setenv("VIBEFLOW_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestGenerateRandomKey(t *testing.T) {
	a := GenerateRandomKey()
	b := GenerateRandomKey()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
