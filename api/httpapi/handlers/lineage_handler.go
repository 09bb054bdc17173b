package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/lineage"
)

// LineageService is the interface to lineage.Service.
type LineageService interface {
	TableLineage(ctx context.Context, projectID, location, tableID string) (lineage.Graph, error)
}

// LineageHandler exposes per-table inbound lineage lookups.
type LineageHandler struct {
	logger  log.Logger
	service LineageService
}

func NewLineageHandler(logger log.Logger, service LineageService) *LineageHandler {
	return &LineageHandler{
		logger:  logger,
		service: service,
	}
}

func (h *LineageHandler) GetLineage(w http.ResponseWriter, r *http.Request) {
	projectID, location, err := scopeParams(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	tableID := mux.Vars(r)["table_id"]

	graph, err := h.service.TableLineage(r.Context(), projectID, location, tableID)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, graph)
}
