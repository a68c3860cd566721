package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	for _, k := range []string{"PORT", "HTTP_PORT", "DB_DRIVER", "MONGO_URI", "MONGO_TRANSACTIONS", "UPLOAD_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DB.URI)
	assert.Equal(t, 10*time.Second, cfg.DB.Timeout)
	assert.False(t, cfg.DB.Transactions)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "Memory")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("MONGO_TIMEOUT_SECONDS", "3")
	t.Setenv("UPLOAD_DIR", "/tmp/logos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.True(t, cfg.DB.Transactions)
	assert.Equal(t, 3*time.Second, cfg.DB.Timeout)
	assert.Equal(t, "/tmp/logos", cfg.Storage.UploadDir)

	t.Setenv("HTTP_PORT", "9090")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
}

func TestLoad_Invalida(t *testing.T) {
	t.Run("driver desconocido", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
	t.Run("puerto fuera de rango", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("HTTP_PORT", "70000")
		_, err := Load()
		assert.ErrorContains(t, err, "puerto")
	})
}
