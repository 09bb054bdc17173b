package dataproduct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velascoluis/data-roster/dataproduct"
)

func TestIsQualifyingEntry(t *testing.T) {
	t.Run("should return false for entries without a source descriptor", func(t *testing.T) {
		entry := dataproduct.CatalogEntry{Name: "projects/p/locations/l/entryGroups/g/entries/orders"}

		assert.False(t, dataproduct.IsQualifyingEntry(entry))
	})

	t.Run("should match the warehouse system case-insensitively", func(t *testing.T) {
		for _, system := range []string{"BIGQUERY", "bigquery", "BigQuery"} {
			entry := dataproduct.CatalogEntry{
				Name:   "entries/orders",
				Source: &dataproduct.EntrySource{System: system},
			}

			assert.True(t, dataproduct.IsQualifyingEntry(entry), system)
		}
	})

	t.Run("should return false for other systems", func(t *testing.T) {
		entry := dataproduct.CatalogEntry{
			Name:   "entries/orders",
			Source: &dataproduct.EntrySource{System: "CLOUD_STORAGE"},
		}

		assert.False(t, dataproduct.IsQualifyingEntry(entry))
	})
}

func TestProductName(t *testing.T) {
	t.Run("should extract the product name label", func(t *testing.T) {
		entry := dataproduct.CatalogEntry{
			Source: &dataproduct.EntrySource{
				Labels: map[string]string{"dataproduct-name": "orders"},
			},
		}

		name, ok := dataproduct.ProductName(entry)

		assert.True(t, ok)
		assert.Equal(t, "orders", name)
	})

	t.Run("should report absence for entries without the label", func(t *testing.T) {
		testCases := []struct {
			description string
			entry       dataproduct.CatalogEntry
		}{
			{
				description: "no source descriptor",
				entry:       dataproduct.CatalogEntry{},
			},
			{
				description: "nil label map",
				entry:       dataproduct.CatalogEntry{Source: &dataproduct.EntrySource{}},
			},
			{
				description: "empty label value",
				entry: dataproduct.CatalogEntry{
					Source: &dataproduct.EntrySource{Labels: map[string]string{"dataproduct-name": ""}},
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, ok := dataproduct.ProductName(tc.entry)

				assert.False(t, ok)
			})
		}
	})
}
