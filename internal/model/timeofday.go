package model

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// TimeOfDay is a clock time expressed as minutes from midnight.
// It marshals as "HH:MM" in both JSON and YAML.
type TimeOfDay int

const (
	MinutesPerDay = 24 * 60
	EndOfDay      = TimeOfDay(MinutesPerDay - 1) // 23:59
)

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q (use HH:MM)", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// MustTimeOfDay parses a "HH:MM" string and panics on error.
// Intended for static catalog data only.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Clamp bounds t to [lo, hi].
func (t TimeOfDay) Clamp(lo, hi TimeOfDay) TimeOfDay {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

// DistanceTo returns the absolute gap between two clock times in minutes.
func (t TimeOfDay) DistanceTo(o TimeOfDay) int {
	if t > o {
		return int(t - o)
	}
	return int(o - t)
}

// Midpoint returns the clock time halfway between t and o.
func Midpoint(a, b TimeOfDay) TimeOfDay {
	return (a + b) / 2
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
