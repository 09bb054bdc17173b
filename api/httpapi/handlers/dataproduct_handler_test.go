package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/odpf/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/velascoluis/data-roster/api/httpapi/handlers"
	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/lib/mocks"
	"github.com/velascoluis/data-roster/lib/set"
)

func TestDataProductHandlerGetAll(t *testing.T) {
	t.Run("should return 400 when project_id is missing", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?location=us-central1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"detail":"\"project_id\" must be specified"}`, rr.Body.String())
		svc.AssertNotCalled(t, "ListDataProducts")
	})

	t.Run("should return 400 when location is missing", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "ListDataProducts")
	})

	t.Run("should return the products under a data_products key", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		svc.On("ListDataProducts", mock.Anything, "my-project", "us-central1").Return([]dataproduct.DataProduct{
			{
				ID:         "orders",
				Name:       "orders",
				Kind:       "source-aligned",
				Team:       "sales",
				Components: []dataproduct.Component{},
				Tags:       set.NewStringSet("commerce"),
				CreatedAt:  "2023-01-01T00:00:00Z",
			},
		}, nil)
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project&location=us-central1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"data_products": [
				{
					"id": "orders",
					"name": "orders",
					"kind": "source-aligned",
					"team": "sales",
					"components": [],
					"tags": ["commerce"],
					"created_at": "2023-01-01T00:00:00Z"
				}
			]
		}`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("should return an empty list when no products exist", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		svc.On("ListDataProducts", mock.Anything, "my-project", "us-central1").Return(nil, nil)
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project&location=us-central1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data_products": []}`, rr.Body.String())
	})

	t.Run("should return 403 on permission errors", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		svc.On("ListDataProducts", mock.Anything, "my-project", "us-central1").
			Return(nil, dataproduct.PermissionDeniedError{Resource: "projects/my-project", Err: errors.New("denied")})
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project&location=us-central1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("should return 404 when the scope does not exist", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		svc.On("ListDataProducts", mock.Anything, "my-project", "nowhere1").
			Return(nil, dataproduct.NotFoundError{Resource: "locations/nowhere1", Err: errors.New("not found")})
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project&location=nowhere1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should return 500 on unclassified errors", func(t *testing.T) {
		svc := new(mocks.DataProductService)
		svc.On("ListDataProducts", mock.Anything, "my-project", "us-central1").
			Return(nil, errors.New("catalog unavailable"))
		handler := handlers.NewDataProductHandler(log.NewNoop(), svc)

		rr := httptest.NewRecorder()
		rw := httptest.NewRequest(http.MethodGet, "/api/data-products?project_id=my-project&location=us-central1", nil)
		handler.GetAll(rr, rw)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "catalog unavailable")
	})
}
