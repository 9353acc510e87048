package api

import (
	"errors"
	"net/http"

	reqdto "dreamstay/internal/handler/dto/request"
	resdto "dreamstay/internal/handler/dto/response"
	"dreamstay/internal/handler/httperr"
	"dreamstay/internal/usecase/commands"
	"dreamstay/internal/usecase/queries"
	"dreamstay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for the given dates and guest list
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	snap, err := h.reservationCommands.Create(c.Request.Context(), req)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Messages[0])
			return
		}
		switch {
		case errors.Is(err, commands.ErrUnknownHotelOrRoom):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hotel o tipo de habitación inválido")
		case errors.Is(err, commands.ErrRoomUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "La habitación seleccionada no tiene disponibilidad para esas fechas")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Search reservation
// @Description Look up a reservation by confirmation code and contact email
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.SearchReservationRequest true "Lookup credentials"
// @Success 200 {object} map[string]resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/search [post]
func (h *ReservationHandler) SearchReservation(c *gin.Context) {
	var req reqdto.SearchReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	snap, err := h.reservationQueries.FindByCodeAndEmail(c.Request.Context(), req.Code, req.Email)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Messages[0])
			return
		}
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No se encontro una reserva asociada a los datos ingresados.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": resdto.FromSnapshot(snap)})
}
