//go:build e2e

package rental

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"car-rental/internal/handler/dto/request"
	"car-rental/internal/handler/dto/response"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/locale"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/dbtest"
	"car-rental/tests/common/httptest"
	"car-rental/tests/common/testutil"
	"car-rental/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RentalTestSuite struct {
	e2e.SharedSuite
}

func TestRentalSuite(t *testing.T) {
	suite.Run(t, new(RentalTestSuite))
}

func categoryPayload() request.CarCategoryPayload {
	return builder.NewCategoryBuilder().WithCarIDs("car-3", "car-2", "car-1").BuildPayload()
}

func rentRequest(customerID string, age, days int) request.RentRequest {
	return builder.NewRentRequestBuilder().
		With(func(b *builder.RentRequestBuilder) {
			b.Customer = builder.NewCustomerBuilder().With(func(cb *builder.CustomerBuilder) {
				cb.ID = customerID
				cb.Age = age
			})
			b.Category = builder.NewCategoryBuilder().WithCarIDs("car-3", "car-2", "car-1")
		}).
		WithDays(days).
		BuildRequestDTO()
}

func (s *RentalTestSuite) TestGetAvailableCar() {
	s.Run("success: first available car in stored order", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/getAvailableCar", categoryPayload())

		var body response.Envelope[response.CarResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "car-1", body.Result.ID)
		assert.True(s.T(), body.Result.Available)
	})

	s.Run("error: category without cars is a 500", func() {
		payload := builder.NewCategoryBuilder().With(func(b *builder.CategoryBuilder) {
			b.ID = dbtest.EmptyCategoryID
			b.CarIDs = nil
		}).BuildPayload()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/getAvailableCar", payload)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: only rented cars is a 500", func() {
		payload := builder.NewCategoryBuilder().WithCarIDs("car-3").BuildPayload()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/getAvailableCar", payload)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: malformed body is a 400", func() {
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/getAvailableCar", `{"id":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RentalTestSuite) TestCalculateFinalPrice() {
	cases := []struct {
		name     string
		request  request.RentRequest
		expected string
	}{
		{"adult pays the base price", rentRequest(dbtest.AdultID, 50, 5), "R$\u00a0188,00"},
		{"young customer pays the surcharge", rentRequest(dbtest.YoungID, 20, 5), "R$\u00a0244,40"},
		{"one day", rentRequest(dbtest.AdultID, 50, 1), "R$\u00a037,60"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/calculateFinalPrice", tc.request)

			var body response.Envelope[string]
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			assert.Equal(s.T(), tc.expected, body.Result)
		})
	}

	s.Run("price sent as a numeric string", func() {
		body := testutil.DtoMap(s.T(), rentRequest(dbtest.AdultID, 50, 5), testutil.Field("carCategory.price", "37.60"))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/calculateFinalPrice", body)
		assert.Equal(s.T(), "R$\u00a0188,00", httptest.AssertResult[string](s.T(), rec))
	})

	s.Run("error: minor customer is a 500", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/calculateFinalPrice",
			rentRequest(dbtest.MinorID, 17, 5))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: zero days is a 500", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/calculateFinalPrice",
			rentRequest(dbtest.AdultID, 50, 0))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RentalTestSuite) TestRent() {
	s.Run("success: receipt with car, amount and due date", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/rent", rentRequest(dbtest.AdultID, 50, 5))

		var body response.Envelope[response.ReceiptResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), dbtest.AdultID, body.Result.Customer.ID)
		assert.Equal(s.T(), "car-1", body.Result.Car.ID)
		assert.Equal(s.T(), "R$\u00a0188,00", body.Result.Amount)

		// Test config renders due dates in UTC
		expectedDue := locale.NewBrazilian().LongDate(time.Now().UTC().AddDate(0, 0, 5))
		assert.Equal(s.T(), expectedDue, body.Result.DueDate)
	})

	s.Run("renting leaves the stored cars untouched", func() {
		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/rent", rentRequest(dbtest.AdultID, 50, 3))

			var body response.Envelope[response.ReceiptResponse]
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			assert.Equal(s.T(), "car-1", body.Result.Car.ID)
		}

		raw, err := s.Store.Load(context.Background(), s.Config.Store.Cars)
		require.NoError(s.T(), err)
		require.Len(s.T(), raw, 3)

		var stored response.CarResponse
		require.NoError(s.T(), json.Unmarshal(raw[1], &stored))
		assert.Equal(s.T(), "car-1", stored.ID)
		assert.True(s.T(), stored.Available)
	})

	s.Run("error: nothing is returned when pricing fails", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/rent", rentRequest(dbtest.MinorID, 17, 5))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(s.T(), rec.Body.String(), "result")
	})
}

func (s *RentalTestSuite) TestCatalog() {
	s.Run("list categories", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/carCategories", nil)

		var body response.Envelope[[]response.CategoryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		require.Len(s.T(), body.Result, 2)
		assert.Equal(s.T(), dbtest.CategoryID, body.Result[0].ID)
		assert.Equal(s.T(), []string{"car-3", "car-2", "car-1"}, body.Result[0].CarIDs)
		assert.Empty(s.T(), body.Result[1].CarIDs)
	})

	s.Run("get customer", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/customers/"+dbtest.MinorID, nil)

		var body response.Envelope[response.CustomerResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), 17, body.Result.Age)
	})

	s.Run("error: unknown ids are 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/customers/nobody", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/carCategories/nothing", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car category not found")
	})
}

func (s *RentalTestSuite) TestUnknownRoute() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/", nil)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `{"success":"Hello World!"}`, rec.Body.String())
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
}

func TestMissingDataSource(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Store.DataDir = t.TempDir()

	// Startup only warns about unreadable collections
	router := e2e.BuildApp(t, cfg)

	for range 2 {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/getAvailableCar", categoryPayload())
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	}

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/calculateFinalPrice", rentRequest(dbtest.AdultID, 50, 5))
	var body response.Envelope[string]
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "R$\u00a0188,00", body.Result)
}
