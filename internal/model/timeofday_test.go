package model

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("07:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 450 {
		t.Errorf("expected 450 minutes, got %d", got)
	}
	if got.String() != "07:30" {
		t.Errorf("expected 07:30, got %s", got.String())
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	for _, s := range []string{"", "seven", "25:00", "12:75", "-1:00"} {
		if _, err := ParseTimeOfDay(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestTimeOfDayClamp(t *testing.T) {
	if got := TimeOfDay(100).Clamp(360, 1380); got != 360 {
		t.Errorf("expected clamp up to 360, got %d", got)
	}
	if got := TimeOfDay(1400).Clamp(360, 1380); got != 1380 {
		t.Errorf("expected clamp down to 1380, got %d", got)
	}
	if got := TimeOfDay(700).Clamp(360, 1380); got != 700 {
		t.Errorf("expected unchanged 700, got %d", got)
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(TimeOfDay(465))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"07:45"` {
		t.Errorf("expected \"07:45\", got %s", b)
	}

	var back TimeOfDay
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != 465 {
		t.Errorf("expected 465, got %d", back)
	}
}

func TestSlotLabel(t *testing.T) {
	cases := []struct {
		time string
		want string
	}{
		{"07:00", "Morning"},
		{"11:59", "Morning"},
		{"12:00", "Afternoon"},
		{"14:59", "Afternoon"},
		{"15:00", "Evening"},
		{"19:59", "Evening"},
		{"20:00", "Night"},
		{"23:59", "Night"},
	}
	for _, c := range cases {
		if got := SlotLabel(MustTimeOfDay(c.time)); got != c.want {
			t.Errorf("%s: expected %s, got %s", c.time, c.want, got)
		}
	}
}

func TestConstraintSpecCompile(t *testing.T) {
	c, err := ConstraintSpec{Kind: "min_separation", Minutes: 120}.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	sep, ok := c.(MinSeparation)
	if !ok {
		t.Fatalf("expected MinSeparation, got %T", c)
	}
	if sep.Minutes != 120 {
		t.Errorf("expected 120 minutes, got %d", sep.Minutes)
	}

	if _, err := (ConstraintSpec{Kind: "bogus"}).Compile(); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := (ConstraintSpec{Kind: "advisory"}).Compile(); err == nil {
		t.Error("expected error for advisory without message")
	}
	if _, err := (ConstraintSpec{Kind: "avoid_after"}).Compile(); err == nil {
		t.Error("expected error for avoid_after without time")
	}
}

func TestRuleJSONRoundTrip(t *testing.T) {
	rule := InteractionRule{
		RuleKey:           "iron-calcium-separation",
		Version:           1,
		AppliesToTags:     []string{TagIron},
		ConflictsWithTags: []string{TagDivalentCation},
		Constraint:        MinSeparation{Minutes: 120},
		Severity:          SeveritySoft,
		Confidence:        85,
		Active:            true,
	}

	b, err := json.Marshal(rule)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back InteractionRule
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.RuleKey != rule.RuleKey {
		t.Errorf("expected key %s, got %s", rule.RuleKey, back.RuleKey)
	}
	sep, ok := back.Constraint.(MinSeparation)
	if !ok {
		t.Fatalf("expected MinSeparation, got %T", back.Constraint)
	}
	if sep.Minutes != 120 {
		t.Errorf("expected 120 minutes, got %d", sep.Minutes)
	}
	if !back.Active {
		t.Error("expected active to round-trip")
	}
}

func TestRuleJSONActiveDefaultsTrue(t *testing.T) {
	var rule InteractionRule
	raw := `{"rule_key":"r","constraint":{"kind":"with_food"},"severity":"soft","confidence":50}`
	if err := json.Unmarshal([]byte(raw), &rule); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !rule.Active {
		t.Error("expected omitted active to default to true")
	}
}
