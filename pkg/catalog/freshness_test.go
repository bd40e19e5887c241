package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeInDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.InDelta(t, 0, AgeInDays(now, now), 1e-12)
	assert.InDelta(t, 1, AgeInDays(now.Add(-24*time.Hour), now), 1e-12)
	assert.InDelta(t, 0.5, AgeInDays(now.Add(-12*time.Hour), now), 1e-12)
	assert.InDelta(t, 6, AgeInDays(now.Add(-6*24*time.Hour), now), 1e-12)
}

func TestDecide(t *testing.T) {
	now := time.Now()
	path := filepath.Join(t.TempDir(), "exoplanetEU.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	tests := []struct {
		name string
		age  time.Duration
		want Decision
	}{
		{"just written", 0, Fresh},
		{"one day", 24 * time.Hour, Fresh},
		{"threshold", 5 * 24 * time.Hour, Fresh},
		{"past threshold", 5*24*time.Hour + time.Minute, Stale},
		{"six days", 6 * 24 * time.Hour, Stale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := now.Add(-tt.age)
			require.NoError(t, os.Chtimes(path, mt, mt))
			info, err := os.Stat(path)
			require.NoError(t, err)

			assert.Equal(t, tt.want, DefaultPolicy().Decide(info, true, now))
		})
	}
}

func TestDecide_Missing(t *testing.T) {
	assert.Equal(t, Missing, DefaultPolicy().Decide(nil, false, time.Now()))
}

func TestPolicy_ZeroUsesDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultMaxAgeDays), Policy{}.maxAge())
	assert.Equal(t, 2.0, Policy{MaxAgeDays: 2}.maxAge())
}

func TestDecision(t *testing.T) {
	assert.Equal(t, "fresh", Fresh.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "stale", Stale.String())

	assert.False(t, Fresh.NeedsFetch())
	assert.True(t, Missing.NeedsFetch())
	assert.True(t, Stale.NeedsFetch())
}
