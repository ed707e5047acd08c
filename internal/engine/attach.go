package engine

import "github.com/dosewise/dosewise/internal/model"

// AttachProfiles joins input items to their catalog profiles. Items with no
// matching profile get a nil profile and an empty tag set; they are never an
// error. Input order is preserved.
func AttachProfiles(items []model.InputItem, profiles []model.ItemProfile) []model.EnrichedItem {
	byName := make(map[string]*model.ItemProfile, len(profiles))
	for i := range profiles {
		byName[profiles[i].CanonicalName] = &profiles[i]
	}

	enriched := make([]model.EnrichedItem, 0, len(items))
	for _, item := range items {
		if item.Frequency == "" {
			item.Frequency = "daily"
		}
		e := model.EnrichedItem{InputItem: item}
		if p, ok := byName[item.CanonicalName]; ok {
			e.Profile = p
			e.Tags = p.Tags
			if e.DisplayName == "" {
				e.DisplayName = p.DisplayName
			}
		}
		if e.DisplayName == "" {
			e.DisplayName = item.CanonicalName
		}
		enriched = append(enriched, e)
	}
	return enriched
}
