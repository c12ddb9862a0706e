// Package calibration owns the flat settings record edited on the calibration panel.
//
// Values arrive as text from the panel's inputs. Set parses the text into the
// field's type and rejects what does not parse; it does not enforce ranges, so
// a refresh rate outside the slider's 30–144 Hz is stored as given.
package calibration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/forge/pkg/fab"
)

var (
	// ErrUnknownKey is returned for a key that names no setting.
	ErrUnknownKey = errors.New("unknown calibration key")

	// ErrInvalidValue is returned when a value cannot be converted to the setting's type.
	ErrInvalidValue = errors.New("invalid calibration value")
)

// Store holds the current settings and the defaults Reset returns to.
type Store struct {
	current  fab.Config
	defaults fab.Config
}

// NewStore creates a store whose current settings start at defaults.
func NewStore(defaults fab.Config) *Store {
	return &Store{current: defaults, defaults: defaults}
}

// Get returns a snapshot of the current settings.
func (s *Store) Get() fab.Config {
	return s.current
}

// Defaults returns the settings Reset restores.
func (s *Store) Defaults() fab.Config {
	return s.defaults
}

// Reset discards every change since construction.
func (s *Store) Reset() {
	s.current = s.defaults
}

// Keys returns the settable keys in panel order.
func Keys() []string {
	return []string{
		fab.KeyHighContrast,
		fab.KeyHapticFeedback,
		fab.KeyRefreshRate,
		fab.KeyMaxTorque,
		fab.KeyTempCeiling,
		fab.KeyGridDensity,
		fab.KeyCalibrationNotes,
	}
}

// Set parses raw into the named field and overwrites it. Only that field
// changes. On error the settings are left as they were.
func (s *Store) Set(key, raw string) error {
	v := strings.TrimSpace(raw)

	switch key {
	case fab.KeyHighContrast, fab.KeyHapticFeedback:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(key, raw, "boolean")
		}
		return s.SetValue(key, b)

	case fab.KeyRefreshRate, fab.KeyGridDensity:
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(key, raw, "integer")
		}
		return s.SetValue(key, n)

	case fab.KeyMaxTorque, fab.KeyTempCeiling:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid(key, raw, "number")
		}
		return s.SetValue(key, f)

	case fab.KeyCalibrationNotes:
		// Notes keep their whitespace
		return s.SetValue(key, raw)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// SetValue stores a typed value. The value's type must match the field:
// bool, int, float64 (ints are accepted for float fields) or string.
func (s *Store) SetValue(key string, value any) error {
	c := s.current

	switch key {
	case fab.KeyHighContrast:
		b, ok := value.(bool)
		if !ok {
			return mismatch(key, value)
		}
		c.HighContrast = b
	case fab.KeyHapticFeedback:
		b, ok := value.(bool)
		if !ok {
			return mismatch(key, value)
		}
		c.HapticFeedback = b
	case fab.KeyRefreshRate:
		n, ok := value.(int)
		if !ok {
			return mismatch(key, value)
		}
		c.RefreshRate = n
	case fab.KeyGridDensity:
		n, ok := value.(int)
		if !ok {
			return mismatch(key, value)
		}
		c.GridDensity = n
	case fab.KeyMaxTorque:
		f, ok := toFloat(value)
		if !ok {
			return mismatch(key, value)
		}
		c.MaxTorque = f
	case fab.KeyTempCeiling:
		f, ok := toFloat(value)
		if !ok {
			return mismatch(key, value)
		}
		c.TempCeiling = f
	case fab.KeyCalibrationNotes:
		str, ok := value.(string)
		if !ok {
			return mismatch(key, value)
		}
		c.CalibrationNotes = str
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	s.current = c
	return nil
}

// Lookup returns the current value of key rendered as text.
func (s *Store) Lookup(key string) (string, error) {
	c := s.current
	switch key {
	case fab.KeyHighContrast:
		return strconv.FormatBool(c.HighContrast), nil
	case fab.KeyHapticFeedback:
		return strconv.FormatBool(c.HapticFeedback), nil
	case fab.KeyRefreshRate:
		return strconv.Itoa(c.RefreshRate), nil
	case fab.KeyMaxTorque:
		return strconv.FormatFloat(c.MaxTorque, 'f', -1, 64), nil
	case fab.KeyTempCeiling:
		return strconv.FormatFloat(c.TempCeiling, 'f', -1, 64), nil
	case fab.KeyGridDensity:
		return strconv.Itoa(c.GridDensity), nil
	case fab.KeyCalibrationNotes:
		return c.CalibrationNotes, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func invalid(key, raw, kind string) error {
	return fmt.Errorf("%w: %s expects a %s, got %q", ErrInvalidValue, key, kind, raw)
}

func mismatch(key string, value any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrInvalidValue, key, value)
}
