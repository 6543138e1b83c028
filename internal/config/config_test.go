package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), cfg.Settings)
	assert.Equal(t, float32(1280), cfg.WindowWidth)
	assert.Equal(t, ":8888", cfg.ViewerAddr)
	assert.False(t, cfg.ViewerEnabled)
	assert.True(t, cfg.Advertise)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CURVEBOARD_CURVE_TENSION", "0.8")
	t.Setenv("CURVEBOARD_SNAP_DISTANCE", "12")
	t.Setenv("CURVEBOARD_SHOW_INFLUENCE_RADIUS", "true")
	t.Setenv("CURVEBOARD_VIEWER_ENABLED", "true")
	t.Setenv("CURVEBOARD_EXPORT_DIR", "/tmp/boards")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.CurveTension)
	assert.Equal(t, 12.0, cfg.SnapDistance)
	assert.True(t, cfg.ShowInfluenceRadius)
	assert.True(t, cfg.ViewerEnabled)
	assert.Equal(t, "/tmp/boards", cfg.ExportDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("CURVEBOARD_POINT_SIZE", "large")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("out of range", func(t *testing.T) {
		t.Setenv("CURVEBOARD_STROKE_WIDTH", "-1")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"zero snap disables snapping", func(s *Settings) { s.SnapDistance = 0 }, true},
		{"negative tension", func(s *Settings) { s.CurveTension = -0.5 }, true},
		{"zero width", func(s *Settings) { s.StrokeWidth = 0 }, false},
		{"zero point size", func(s *Settings) { s.PointSize = 0 }, false},
		{"negative snap", func(s *Settings) { s.SnapDistance = -1 }, false},
		{"negative radius", func(s *Settings) { s.CurveRadius = -1 }, false},
		{"nan tension", func(s *Settings) { s.CurveTension = math.NaN() }, false},
		{"nan width", func(s *Settings) { s.StrokeWidth = math.NaN() }, false},
		{"empty color", func(s *Settings) { s.StrokeColor = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			}
		})
	}
}
