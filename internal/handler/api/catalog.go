package api

import (
	"errors"
	"net/http"

	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q usecase.CatalogQueries
}

func NewCatalogHandler(q usecase.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List car categories
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.Envelope[[]resdto.CategoryResponse]
// @Failure 500 {object} httperr.Response
// @Router /carCategories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromCategories(categories)))
}

// @Summary Get car category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.Envelope[resdto.CategoryResponse]
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /carCategories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.q.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car category not found", nil)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromCategory(category)))
}

// @Summary Get customer
// @Tags catalog
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.Envelope[resdto.CustomerResponse]
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	found, err := h.q.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromCustomer(found)))
}
