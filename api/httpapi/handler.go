package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velascoluis/data-roster/api/httpapi/handlers"
)

type Handler struct {
	DataProduct *handlers.DataProductHandler
	Profile     *handlers.ProfileHandler
	Lineage     *handlers.LineageHandler
	Root        *handlers.RootHandler
}

func RegisterRoutes(router *mux.Router, handlerCollection *Handler) {
	router.Path("/ping").Handler(handlers.NewHeartbeatHandler())

	setupAPIRoutes(router, handlerCollection)

	router.Path("/").Methods(http.MethodGet).Handler(handlerCollection.Root)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
}
