package engine

import (
	"testing"

	"github.com/dosewise/dosewise/internal/model"
)

func TestAttachProfiles(t *testing.T) {
	profiles := []model.ItemProfile{
		{CanonicalName: "levothyroxine", DisplayName: "Levothyroxine", Kind: model.KindMedication, Tags: []string{model.TagThyroidHormone}},
	}
	items := []model.InputItem{
		{CanonicalName: "levothyroxine"},
		{CanonicalName: "mystery-pill", DisplayName: "Mystery Pill"},
	}

	enriched := AttachProfiles(items, profiles)
	if len(enriched) != 2 {
		t.Fatalf("expected 2 items, got %d", len(enriched))
	}

	if enriched[0].Profile == nil {
		t.Fatal("expected profile for levothyroxine")
	}
	if enriched[0].DisplayName != "Levothyroxine" {
		t.Errorf("expected display name from profile, got %q", enriched[0].DisplayName)
	}
	if !enriched[0].HasTag(model.TagThyroidHormone) {
		t.Error("expected tags resolved from profile")
	}
	if enriched[0].Frequency != "daily" {
		t.Errorf("expected default frequency daily, got %q", enriched[0].Frequency)
	}

	// Unknown items degrade to no preference, not an error.
	if enriched[1].Profile != nil {
		t.Error("expected nil profile for unknown item")
	}
	if len(enriched[1].Tags) != 0 {
		t.Errorf("expected empty tags, got %v", enriched[1].Tags)
	}
	if !enriched[1].Flexible() {
		t.Error("unprofiled items should be flexible")
	}
}

func TestAttachProfilesDisplayNameFallback(t *testing.T) {
	enriched := AttachProfiles([]model.InputItem{{CanonicalName: "unknown-thing"}}, nil)
	if enriched[0].DisplayName != "unknown-thing" {
		t.Errorf("expected canonical name fallback, got %q", enriched[0].DisplayName)
	}
}
