package dataproduct

import "strings"

// IsQualifyingEntry reports whether an entry is warehouse-backed. Entries
// without a source descriptor never qualify.
func IsQualifyingEntry(entry CatalogEntry) bool {
	return entry.Source != nil && strings.EqualFold(entry.Source.System, warehouseSystem)
}

// ProductName extracts the declared data-product affiliation from the
// entry's source labels. The second return value is false when the entry
// carries no (or an empty) product-name label, which excludes it from
// aggregation.
func ProductName(entry CatalogEntry) (string, bool) {
	if entry.Source == nil {
		return "", false
	}
	name, ok := entry.Source.Labels[labelProductName]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
