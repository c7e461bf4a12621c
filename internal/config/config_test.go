package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":8080", cfg.AppPort)
				assert.Equal(t, "sqlite", cfg.DatabaseDriver)
				assert.Equal(t, "admin@socialgrowth.com", cfg.AdminEmail)
				assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
				assert.Empty(t, cfg.RabbitMQURL)
			},
		},
		{
			name: "env overrides",
			env: map[string]string{
				"APP_PORT":        ":9090",
				"DATABASE_DRIVER": "Postgres",
				"DATABASE_DSN":    "host=db user=postgres dbname=smm sslmode=disable",
				"RABBITMQ_URL":    "amqp://guest:guest@mq:5672/",
				"GEMINI_TIMEOUT":  "5s",
				"GEMINI_API_KEY":  "key",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9090", cfg.AppPort)
				assert.Equal(t, "postgres", cfg.DatabaseDriver)
				assert.Equal(t, "host=db user=postgres dbname=smm sslmode=disable", cfg.DatabaseDSN)
				assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQURL)
				assert.Equal(t, 5*time.Second, cfg.GeminiTimeout)
				assert.Equal(t, "key", cfg.GeminiAPIKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}
