// File: store/value.go
package store

import (
	"fmt"
	"strconv"
	"time"
)

// Typed accessors over the raw string values. Absent keys and failed
// conversions are both reported as errors; conversion rules match the rest
// of the module (base-0 integers, standard bool spellings, Go duration
// syntax).

// Int64 retrieves the value for key parsed as an integer. Base prefixes are
// honored ("0x1F" parses as 31); a value that only parses as a float is
// truncated.
func (s *Store) Int64(key string) (int64, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	if i, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("cannot convert value %q of key %q to int64", raw, key)
}

// Bool retrieves the value for key parsed as a boolean.
func (s *Store) Bool(key string) (bool, error) {
	raw, err := s.Get(key)
	if err != nil {
		return false, err
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("cannot convert value %q of key %q to bool: %w", raw, key, err)
	}
	return b, nil
}

// Float64 retrieves the value for key parsed as a float.
func (s *Store) Float64(key string) (float64, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0.0, err
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0, fmt.Errorf("cannot convert value %q of key %q to float64: %w", raw, key, err)
	}
	return f, nil
}

// Duration retrieves the value for key parsed as a Go duration ("30s",
// "1h15m").
func (s *Store) Duration(key string) (time.Duration, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("cannot convert value %q of key %q to duration: %w", raw, key, err)
	}
	return d, nil
}

// GetOr returns the value for key, or fallback when the key is absent.
func (s *Store) GetOr(key, fallback string) string {
	if v, err := s.Get(key); err == nil {
		return v
	}
	return fallback
}

// Int64Or returns the integer value for key, or fallback when the key is
// absent or the value does not convert.
func (s *Store) Int64Or(key string, fallback int64) int64 {
	if v, err := s.Int64(key); err == nil {
		return v
	}
	return fallback
}

// BoolOr returns the boolean value for key, or fallback when the key is
// absent or the value does not convert.
func (s *Store) BoolOr(key string, fallback bool) bool {
	if v, err := s.Bool(key); err == nil {
		return v
	}
	return fallback
}

// Float64Or returns the float value for key, or fallback when the key is
// absent or the value does not convert.
func (s *Store) Float64Or(key string, fallback float64) float64 {
	if v, err := s.Float64(key); err == nil {
		return v
	}
	return fallback
}

// DurationOr returns the duration value for key, or fallback when the key
// is absent or the value does not convert.
func (s *Store) DurationOr(key string, fallback time.Duration) time.Duration {
	if v, err := s.Duration(key); err == nil {
		return v
	}
	return fallback
}

// SetInt64 stores an integer value for key.
func (s *Store) SetInt64(key string, value int64) error {
	return s.Set(key, strconv.FormatInt(value, 10))
}

// SetBool stores a boolean value for key.
func (s *Store) SetBool(key string, value bool) error {
	return s.Set(key, strconv.FormatBool(value))
}

// SetFloat64 stores a float value for key.
func (s *Store) SetFloat64(key string, value float64) error {
	return s.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// SetDuration stores a duration value for key.
func (s *Store) SetDuration(key string, value time.Duration) error {
	return s.Set(key, value.String())
}
