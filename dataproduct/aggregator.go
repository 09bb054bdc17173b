package dataproduct

import (
	"time"

	"github.com/velascoluis/data-roster/lib/set"
)

// Aggregate builds one DataProduct from the components sharing a
// product-name label. Kind and team resolve with a two-pass, two-source
// scan: first over every component's top-level labels, then over every
// component's source labels, first match wins in component discovery
// order. The two maps are usually identical but upstream does not
// guarantee it, so both passes must stay.
func Aggregate(name string, components []Component) DataProduct {
	kind := resolveLabel(components, labelProductKind, defaultKind)
	team := resolveLabel(components, labelProductTeam, defaultTeam)

	// tags collect the label values seen across components, minus the
	// attributes already surfaced on the product itself
	tags := set.NewStringSet()
	for _, component := range components {
		for _, value := range component.Labels {
			if value == name || value == kind || value == team {
				continue
			}
			tags.Add(value)
		}
	}

	return DataProduct{
		ID:         name,
		Name:       name,
		Kind:       kind,
		Team:       team,
		Components: components,
		Tags:       tags,
		CreatedAt:  earliestCreation(components),
	}
}

func resolveLabel(components []Component, key, fallback string) string {
	for _, component := range components {
		if value, ok := component.Labels[key]; ok {
			return value
		}
	}
	for _, component := range components {
		if value, ok := component.Source.Labels[key]; ok {
			return value
		}
	}
	return fallback
}

// earliestCreation returns the minimum created_at among the components.
// RFC 3339 strings in UTC order lexicographically, so a plain string
// comparison is a temporal one. An empty component list degrades to now.
func earliestCreation(components []Component) string {
	if len(components) == 0 {
		return time.Now().UTC().Format(time.RFC3339)
	}
	earliest := components[0].CreatedAt
	for _, component := range components[1:] {
		if component.CreatedAt < earliest {
			earliest = component.CreatedAt
		}
	}
	return earliest
}
