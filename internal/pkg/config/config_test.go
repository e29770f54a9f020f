package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "dispatch-service", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Dispatch.BroadcastRadiusKm)
	assert.Equal(t, "mini", cfg.Dispatch.DefaultVehicleClass)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("BROADCAST_RADIUS_KM", "7.5")
	t.Setenv("DEFAULT_VEHICLE_CLASS", "sedan")
	t.Setenv("SERVER_PORT", "8081")

	cfg := loadConfigFromEnv()

	assert.Equal(t, 7.5, cfg.Dispatch.BroadcastRadiusKm)
	assert.Equal(t, "sedan", cfg.Dispatch.DefaultVehicleClass)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestGetEnvAsFloat_Invalid(t *testing.T) {
	t.Setenv("BROADCAST_RADIUS_KM", "not-a-number")

	assert.Equal(t, 5.0, GetEnvAsFloat("BROADCAST_RADIUS_KM", 5.0))
}
