package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/dosewise/dosewise/internal/model"
)

// ruleFile is the YAML layout of a caller-supplied rule file.
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	RuleKey           string               `yaml:"rule_key"`
	Version           int                  `yaml:"version"`
	AppliesTo         []string             `yaml:"applies_to"`
	AppliesToTags     []string             `yaml:"applies_to_tags"`
	ConflictsWith     []string             `yaml:"conflicts_with"`
	ConflictsWithTags []string             `yaml:"conflicts_with_tags"`
	Constraint        model.ConstraintSpec `yaml:"constraint"`
	Severity          model.Severity       `yaml:"severity"`
	Confidence        int                  `yaml:"confidence"`
	Rationale         string               `yaml:"rationale"`
	References        []string             `yaml:"references"`
	Active            *bool                `yaml:"active"` // nil means active
}

type profileFile struct {
	Profiles []model.ItemProfile `yaml:"profiles"`
}

// LoadRules reads caller-supplied interaction rules from a YAML file.
// Unknown fields are rejected so typos surface instead of silently matching
// nothing.
func LoadRules(path string) ([]model.InteractionRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file ruleFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rules := make([]model.InteractionRule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		r, err := spec.toRule()
		if err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (s ruleSpec) toRule() (model.InteractionRule, error) {
	if s.RuleKey == "" {
		return model.InteractionRule{}, fmt.Errorf("rule missing rule_key")
	}
	constraint, err := s.Constraint.Compile()
	if err != nil {
		return model.InteractionRule{}, fmt.Errorf("rule %s: %w", s.RuleKey, err)
	}
	severity := s.Severity
	if severity == "" {
		severity = model.SeveritySoft
	}
	if severity != model.SeverityHard && severity != model.SeveritySoft {
		return model.InteractionRule{}, fmt.Errorf("rule %s: invalid severity %q", s.RuleKey, s.Severity)
	}
	if s.Confidence < 0 || s.Confidence > 100 {
		return model.InteractionRule{}, fmt.Errorf("rule %s: confidence %d out of range", s.RuleKey, s.Confidence)
	}
	active := true
	if s.Active != nil {
		active = *s.Active
	}
	version := s.Version
	if version == 0 {
		version = 1
	}
	return model.InteractionRule{
		RuleKey:           s.RuleKey,
		Version:           version,
		AppliesTo:         s.AppliesTo,
		AppliesToTags:     s.AppliesToTags,
		ConflictsWith:     s.ConflictsWith,
		ConflictsWithTags: s.ConflictsWithTags,
		Constraint:        constraint,
		Severity:          severity,
		Confidence:        s.Confidence,
		Rationale:         s.Rationale,
		References:        s.References,
		Active:            active,
	}, nil
}

// LoadProfiles reads caller-supplied item profiles from a YAML file. Loaded
// profiles shadow built-ins with the same canonical name.
func LoadProfiles(path string) ([]model.ItemProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file profileFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse profiles file %s: %w", path, err)
	}

	for i := range file.Profiles {
		p := &file.Profiles[i]
		if p.CanonicalName == "" {
			return nil, fmt.Errorf("profiles file %s: profile %d missing canonical_name", path, i)
		}
		if p.Kind == "" {
			p.Kind = model.KindSupplement
		}
		if !model.ValidKinds[p.Kind] {
			return nil, fmt.Errorf("profiles file %s: profile %s has invalid kind %q", path, p.CanonicalName, p.Kind)
		}
		if p.DisplayName == "" {
			p.DisplayName = p.CanonicalName
		}
	}
	return file.Profiles, nil
}

// MergeProfiles overlays extras on top of the base catalog, shadowing by
// canonical name. Order of the base catalog is preserved; new profiles are
// appended in file order.
func MergeProfiles(base, extra []model.ItemProfile) []model.ItemProfile {
	out := make([]model.ItemProfile, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.CanonicalName] = i
	}
	for _, p := range extra {
		if i, ok := index[p.CanonicalName]; ok {
			out[i] = p
			continue
		}
		index[p.CanonicalName] = len(out)
		out = append(out, p)
	}
	return out
}
