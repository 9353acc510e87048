package api

import (
	"errors"
	"net/http"

	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/handler/httperr"
	"dreamstay/internal/usecase/queries"
	"dreamstay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Price preview
// @Description Price a hypothetical stay without creating a reservation
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.PricePreviewRequest true "Stay to price"
// @Success 200 {object} queries.PriceQuote
// @Failure 400 {object} httperr.Response
// @Router /price-preview [post]
func (h *PricingHandler) PricePreview(c *gin.Context) {
	var req reqdto.PricePreviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	quote, err := h.pricingQueries.Preview(c.Request.Context(), req)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Messages[0])
			return
		}
		if errors.Is(err, queries.ErrUnknownHotelOrRoom) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hotel o tipo de habitación inválido")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, quote)
}
