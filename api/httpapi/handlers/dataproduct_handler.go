package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/dataproduct"
)

// DataProductService is the interface to dataproduct.Service.
type DataProductService interface {
	ListDataProducts(ctx context.Context, projectID, location string) ([]dataproduct.DataProduct, error)
}

// DataProductHandler exposes the data product listing over REST.
type DataProductHandler struct {
	logger  log.Logger
	service DataProductService
}

func NewDataProductHandler(logger log.Logger, service DataProductService) *DataProductHandler {
	return &DataProductHandler{
		logger:  logger,
		service: service,
	}
}

func (h *DataProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	projectID, location, err := scopeParams(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.service.ListDataProducts(r.Context(), projectID, location)
	if err != nil {
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

	if products == nil {
		products = make([]dataproduct.DataProduct, 0)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data_products": products,
	})
}

func scopeParams(params url.Values) (projectID, location string, err error) {
	projectID = params.Get("project_id")
	if projectID == "" {
		return "", "", errMissingParam("project_id")
	}
	location = params.Get("location")
	if location == "" {
		return "", "", errMissingParam("location")
	}
	return projectID, location, nil
}
