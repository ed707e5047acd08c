package model

import (
	"encoding/json"
	"fmt"
)

// ConstraintSpec is the serialized form of a Constraint: a kind plus the
// fields that kind uses. It is what YAML rule files and the HTTP API carry;
// Compile turns it into the sealed union.
type ConstraintSpec struct {
	Kind          string     `json:"kind" yaml:"kind"`
	Minutes       int        `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	BufferMinutes int        `json:"buffer_minutes,omitempty" yaml:"buffer_minutes,omitempty"`
	After         *TimeOfDay `json:"after,omitempty" yaml:"after,omitempty"`
	Message       string     `json:"message,omitempty" yaml:"message,omitempty"`
}

const (
	kindMinSeparation = "min_separation"
	kindWithFood      = "with_food"
	kindEmptyStomach  = "empty_stomach"
	kindAvoidAfter    = "avoid_after"
	kindAdvisory      = "advisory"
)

// Compile validates the spec and returns the corresponding Constraint.
func (s ConstraintSpec) Compile() (Constraint, error) {
	switch s.Kind {
	case kindMinSeparation:
		if s.Minutes <= 0 {
			return nil, fmt.Errorf("min_separation requires positive minutes")
		}
		return MinSeparation{Minutes: s.Minutes}, nil
	case kindWithFood:
		return WithFood{}, nil
	case kindEmptyStomach:
		if s.BufferMinutes < 0 {
			return nil, fmt.Errorf("empty_stomach buffer must not be negative")
		}
		return EmptyStomach{BufferMinutes: s.BufferMinutes}, nil
	case kindAvoidAfter:
		if s.After == nil {
			return nil, fmt.Errorf("avoid_after requires an after time")
		}
		return AvoidAfter{After: *s.After}, nil
	case kindAdvisory:
		if s.Message == "" {
			return nil, fmt.Errorf("advisory requires a message")
		}
		return Advisory{Message: s.Message}, nil
	default:
		return nil, fmt.Errorf("unknown constraint kind %q", s.Kind)
	}
}

// SpecOf returns the serialized form of a constraint.
func SpecOf(c Constraint) ConstraintSpec {
	switch v := c.(type) {
	case MinSeparation:
		return ConstraintSpec{Kind: kindMinSeparation, Minutes: v.Minutes}
	case WithFood:
		return ConstraintSpec{Kind: kindWithFood}
	case EmptyStomach:
		return ConstraintSpec{Kind: kindEmptyStomach, BufferMinutes: v.BufferMinutes}
	case AvoidAfter:
		after := v.After
		return ConstraintSpec{Kind: kindAvoidAfter, After: &after}
	case Advisory:
		return ConstraintSpec{Kind: kindAdvisory, Message: v.Message}
	default:
		// Unreachable while the union stays closed.
		return ConstraintSpec{}
	}
}

// ruleJSON mirrors InteractionRule with the constraint in spec form.
type ruleJSON struct {
	RuleKey           string         `json:"rule_key"`
	Version           int            `json:"version"`
	AppliesTo         []string       `json:"applies_to,omitempty"`
	AppliesToTags     []string       `json:"applies_to_tags,omitempty"`
	ConflictsWith     []string       `json:"conflicts_with,omitempty"`
	ConflictsWithTags []string       `json:"conflicts_with_tags,omitempty"`
	Constraint        ConstraintSpec `json:"constraint"`
	Severity          Severity       `json:"severity"`
	Confidence        int            `json:"confidence"`
	Rationale         string         `json:"rationale,omitempty"`
	References        []string       `json:"references,omitempty"`
	Active            *bool          `json:"active,omitempty"` // nil means active
}

func (r InteractionRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{
		RuleKey:           r.RuleKey,
		Version:           r.Version,
		AppliesTo:         r.AppliesTo,
		AppliesToTags:     r.AppliesToTags,
		ConflictsWith:     r.ConflictsWith,
		ConflictsWithTags: r.ConflictsWithTags,
		Constraint:        SpecOf(r.Constraint),
		Severity:          r.Severity,
		Confidence:        r.Confidence,
		Rationale:         r.Rationale,
		References:        r.References,
		Active:            &r.Active,
	})
}

func (r *InteractionRule) UnmarshalJSON(data []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	constraint, err := raw.Constraint.Compile()
	if err != nil {
		return fmt.Errorf("rule %s: %w", raw.RuleKey, err)
	}
	active := true
	if raw.Active != nil {
		active = *raw.Active
	}
	*r = InteractionRule{
		RuleKey:           raw.RuleKey,
		Version:           raw.Version,
		AppliesTo:         raw.AppliesTo,
		AppliesToTags:     raw.AppliesToTags,
		ConflictsWith:     raw.ConflictsWith,
		ConflictsWithTags: raw.ConflictsWithTags,
		Constraint:        constraint,
		Severity:          raw.Severity,
		Confidence:        raw.Confidence,
		Rationale:         raw.Rationale,
		References:        raw.References,
		Active:            active,
	}
	return nil
}

// MarshalJSON renders the applied constraint with its payload in spec form.
func (a AppliedConstraint) MarshalJSON() ([]byte, error) {
	type appliedJSON struct {
		RuleKey    string         `json:"rule_key"`
		Constraint ConstraintSpec `json:"constraint"`
		Target     string         `json:"target"`
		Other      string         `json:"other,omitempty"`
	}
	return json.Marshal(appliedJSON{
		RuleKey:    a.RuleKey,
		Constraint: SpecOf(a.Constraint),
		Target:     a.TargetCanonical,
		Other:      a.OtherCanonical,
	})
}
