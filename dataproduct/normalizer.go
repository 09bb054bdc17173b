package dataproduct

import (
	"strings"
	"time"
)

// Normalize maps one catalog entry into a Component with stable field
// shapes. Every optional upstream field degrades to a documented default:
//
//	name       -> entry ID when the source has no display name
//	type       -> "Unknown" when the entry type is absent
//	created_at -> wall-clock time at normalization when the source has no
//	              creation timestamp (a documented approximation)
//	source     -> system "Unknown", empty resource, empty label map
//
// Normalize never fails on missing optional fields.
func Normalize(entry CatalogEntry) Component {
	id := lastSegment(entry.Name)

	component := Component{
		ID:        id,
		Name:      id,
		Type:      "Unknown",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Source: ComponentSource{
			System: "Unknown",
			Labels: map[string]string{},
		},
	}
	if entry.EntryType != "" {
		component.Type = lastSegment(entry.EntryType)
	}

	if src := entry.Source; src != nil {
		if src.DisplayName != "" {
			component.Name = src.DisplayName
		}
		if !src.CreateTime.IsZero() {
			component.CreatedAt = src.CreateTime.UTC().Format(time.RFC3339)
		}
		if src.System != "" {
			component.Source.System = src.System
		}
		component.Source.Resource = src.Resource
		for key, value := range src.Labels {
			component.Source.Labels[key] = value
		}
	}

	// top-level labels alias the source labels
	component.Labels = component.Source.Labels

	return component
}

func lastSegment(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
