package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "Invalid request format"

type RentalHandler struct {
	rentalUseCase usecase.RentalUseCase
}

func NewRentalHandler(rentalUseCase usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{
		rentalUseCase: rentalUseCase,
	}
}

// @Summary Rent a car
// @Description Pick an available car of the category and return the receipt
// @Tags rental
// @Accept json
// @Produce json
// @Param request body reqdto.RentRequest true "Rent request"
// @Success 200 {object} resdto.Envelope[resdto.ReceiptResponse]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rent [post]
func (h *RentalHandler) Rent(c *gin.Context) {
	var req reqdto.RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	cust, category, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	receipt, err := h.rentalUseCase.Rent(c.Request.Context(), cust, category, req.NumberOfDays)
	if err != nil {
		// Every core failure is reported the same way; details only reach the log.
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromReceipt(receipt)))
}

// @Summary Calculate final price
// @Description Quote the formatted rental amount for a customer, category and duration
// @Tags rental
// @Accept json
// @Produce json
// @Param request body reqdto.RentRequest true "Price request"
// @Success 200 {object} resdto.Envelope[string]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /calculateFinalPrice [post]
func (h *RentalHandler) CalculateFinalPrice(c *gin.Context) {
	var req reqdto.RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	cust, category, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	amount, err := h.rentalUseCase.CalculateFinalPrice(c.Request.Context(), cust, category, req.NumberOfDays)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Wrap(amount))
}

// @Summary Get available car
// @Description Return the first available car listed by the posted category
// @Tags rental
// @Accept json
// @Produce json
// @Param request body reqdto.CarCategoryPayload true "Car category"
// @Success 200 {object} resdto.Envelope[resdto.CarResponse]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /getAvailableCar [post]
func (h *RentalHandler) GetAvailableCar(c *gin.Context) {
	var req reqdto.CarCategoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	category, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	found, err := h.rentalUseCase.GetAvailableCar(c.Request.Context(), category)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromCar(found)))
}
