package services

import (
	"cinemap/dao/redis"
	"cinemap/db"
	"cinemap/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesService(t *testing.T) {
	client := db.NewMemoryRedisClient(context.Background())
	ps := NewPreferencesService(redis.NewRedisPreferencesDAO(client))

	t.Run("defaults when nothing saved", func(t *testing.T) {
		assert.Equal(t, models.DefaultFilterConfig(), ps.Load())
	})

	t.Run("save then load", func(t *testing.T) {
		cfg := models.FilterConfig{RadiusKm: 12, MaxPrice: 11, OnlyOpen: true, Services: []string{"IMAX"}}

		assert.True(t, ps.Save(cfg))
		assert.Equal(t, cfg, ps.Load())
	})

	t.Run("store failure is not fatal", func(t *testing.T) {
		client.FailWith(errors.New("connection refused"))
		defer client.FailWith(nil)

		assert.False(t, ps.Save(models.DefaultFilterConfig()))
		assert.Equal(t, models.DefaultFilterConfig(), ps.Load())
		assert.False(t, ps.Reset())
	})

	t.Run("reset", func(t *testing.T) {
		assert.True(t, ps.Reset())
		assert.Equal(t, models.DefaultFilterConfig(), ps.Load())
	})

	t.Run("corrupted record", func(t *testing.T) {
		_ = client.Set("cinemap_geolocation_preferences", "[]")
		assert.Equal(t, models.DefaultFilterConfig(), ps.Load())
	})
}
