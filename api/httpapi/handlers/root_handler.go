package handlers

import "net/http"

// RootHandler describes the API surface for anyone probing the service
// root.
type RootHandler struct {
	version string
}

func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Data Roster API",
		"version": h.version,
		"endpoints": map[string]string{
			"data_products":        "/api/data-products",
			"data_product_profile": "/api/data-products/{table_id}/profile",
			"data_product_lineage": "/api/data-products/{table_id}/lineage",
		},
	})
}
