package calibration

import (
	"testing"

	"github.com/dyluth/forge/pkg/fab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_StartsAtDefaults(t *testing.T) {
	s := NewStore(fab.DefaultConfig())

	c := s.Get()
	assert.False(t, c.HighContrast)
	assert.True(t, c.HapticFeedback)
	assert.Equal(t, 60, c.RefreshRate)
	assert.Equal(t, 4500.0, c.MaxTorque)
	assert.Equal(t, 85.0, c.TempCeiling)
	assert.Equal(t, 8, c.GridDensity)
	assert.Equal(t, fab.DefaultConfig(), s.Defaults())
}

func TestSet_ParsesEachField(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		check func(t *testing.T, c fab.Config)
	}{
		{fab.KeyHighContrast, "true", func(t *testing.T, c fab.Config) { assert.True(t, c.HighContrast) }},
		{fab.KeyHapticFeedback, "0", func(t *testing.T, c fab.Config) { assert.False(t, c.HapticFeedback) }},
		{fab.KeyRefreshRate, "144", func(t *testing.T, c fab.Config) { assert.Equal(t, 144, c.RefreshRate) }},
		{fab.KeyMaxTorque, " 5200.5 ", func(t *testing.T, c fab.Config) { assert.Equal(t, 5200.5, c.MaxTorque) }},
		{fab.KeyTempCeiling, "90", func(t *testing.T, c fab.Config) { assert.Equal(t, 90.0, c.TempCeiling) }},
		{fab.KeyGridDensity, "12", func(t *testing.T, c fab.Config) { assert.Equal(t, 12, c.GridDensity) }},
		{fab.KeyCalibrationNotes, "  sector 9 ok", func(t *testing.T, c fab.Config) { assert.Equal(t, "  sector 9 ok", c.CalibrationNotes) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := NewStore(fab.DefaultConfig())
			require.NoError(t, s.Set(tt.key, tt.raw))
			tt.check(t, s.Get())
		})
	}
}

// Setting one key leaves every other field alone.
func TestSet_IndependentFields(t *testing.T) {
	s := NewStore(fab.DefaultConfig())
	require.NoError(t, s.Set(fab.KeyMaxTorque, "1000"))

	want := fab.DefaultConfig()
	want.MaxTorque = 1000
	assert.Equal(t, want, s.Get())
}

func TestSet_NoRangeValidation(t *testing.T) {
	s := NewStore(fab.DefaultConfig())
	require.NoError(t, s.Set(fab.KeyRefreshRate, "500"))
	require.NoError(t, s.Set(fab.KeyTempCeiling, "-40"))

	assert.Equal(t, 500, s.Get().RefreshRate)
	assert.Equal(t, -40.0, s.Get().TempCeiling)
}

func TestSet_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		s := NewStore(fab.DefaultConfig())
		err := s.Set("warpFactor", "9")
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("unparsable values leave the record unchanged", func(t *testing.T) {
		s := NewStore(fab.DefaultConfig())
		for key, raw := range map[string]string{
			fab.KeyMaxTorque:    "4500Nm",
			fab.KeyTempCeiling:  "hot",
			fab.KeyRefreshRate:  "60.5",
			fab.KeyHighContrast: "maybe",
		} {
			err := s.Set(key, raw)
			assert.ErrorIs(t, err, ErrInvalidValue, key)
		}
		assert.Equal(t, fab.DefaultConfig(), s.Get())
	})
}

func TestSetValue(t *testing.T) {
	s := NewStore(fab.DefaultConfig())

	require.NoError(t, s.SetValue(fab.KeyHighContrast, true))
	require.NoError(t, s.SetValue(fab.KeyMaxTorque, 3000))
	require.NoError(t, s.SetValue(fab.KeyTempCeiling, 72.5))

	assert.True(t, s.Get().HighContrast)
	assert.Equal(t, 3000.0, s.Get().MaxTorque)
	assert.Equal(t, 72.5, s.Get().TempCeiling)

	assert.ErrorIs(t, s.SetValue(fab.KeyRefreshRate, "60"), ErrInvalidValue)
	assert.ErrorIs(t, s.SetValue(fab.KeyCalibrationNotes, 5), ErrInvalidValue)
	assert.ErrorIs(t, s.SetValue("nope", 1), ErrUnknownKey)
}

func TestReset(t *testing.T) {
	defaults := fab.DefaultConfig()
	defaults.GridDensity = 16
	s := NewStore(defaults)

	require.NoError(t, s.Set(fab.KeyGridDensity, "4"))
	require.NoError(t, s.Set(fab.KeyHighContrast, "true"))
	s.Reset()

	assert.Equal(t, defaults, s.Get())
}

func TestLookup(t *testing.T) {
	s := NewStore(fab.DefaultConfig())

	for _, key := range Keys() {
		_, err := s.Lookup(key)
		assert.NoError(t, err, key)
	}

	v, _ := s.Lookup(fab.KeyTempCeiling)
	assert.Equal(t, "85", v)
	v, _ = s.Lookup(fab.KeyHapticFeedback)
	assert.Equal(t, "true", v)

	_, err := s.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

// Get hands out a copy, not a window onto the store.
func TestGet_Snapshot(t *testing.T) {
	s := NewStore(fab.DefaultConfig())
	c := s.Get()
	c.RefreshRate = 1

	assert.Equal(t, 60, s.Get().RefreshRate)
}
