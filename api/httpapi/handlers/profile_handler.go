package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/lib/fqn"
	"github.com/velascoluis/data-roster/scan"
)

// ProfileService is the interface to scan.Service.
type ProfileService interface {
	TableProfile(ctx context.Context, projectID, location, tableID string) (scan.TableReport, error)
}

// ProfileHandler exposes per-table profile, quality and schema lookups.
type ProfileHandler struct {
	logger  log.Logger
	service ProfileService
}

func NewProfileHandler(logger log.Logger, service ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:  logger,
		service: service,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	projectID, location, err := scopeParams(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	tableID := mux.Vars(r)["table_id"]

	report, err := h.service.TableProfile(r.Context(), projectID, location, tableID)
	if err != nil {
		if errors.As(err, new(fqn.ParseError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(dataproduct.PermissionDeniedError)) {
			WriteJSONError(w, http.StatusForbidden, err.Error())
			return
		}
		if errors.As(err, new(dataproduct.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func errMissingParam(name string) error {
	return fmt.Errorf("%q must be specified", name)
}
