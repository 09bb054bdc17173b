package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func setupAPIRoutes(router *mux.Router, handlers *Handler) {
	baseURL := "/api/data-products"

	router.Path(baseURL).
		Methods(http.MethodGet).
		HandlerFunc(handlers.DataProduct.GetAll)

	router.Path(baseURL + "/{table_id}/profile").
		Methods(http.MethodGet).
		HandlerFunc(handlers.Profile.GetProfile)

	router.Path(baseURL + "/{table_id}/lineage").
		Methods(http.MethodGet).
		HandlerFunc(handlers.Lineage.GetLineage)
}
