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

// FrontDeskHandler covers the on-site operations: check-in, check-out and
// the archived stay history.
type FrontDeskHandler struct {
	reservationCommands commands.ReservationCommands
	stayQueries         queries.StayQueries
}

func NewFrontDeskHandler(
	reservationCommands commands.ReservationCommands,
	stayQueries queries.StayQueries,
) *FrontDeskHandler {
	return &FrontDeskHandler{
		reservationCommands: reservationCommands,
		stayQueries:         stayQueries,
	}
}

// @Summary Check in
// @Description Mark a confirmed reservation as occupied
// @Tags frontdesk
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmationRequest true "Confirmation code"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Router /checkin [post]
func (h *FrontDeskHandler) CheckIn(c *gin.Context) {
	var req reqdto.ConfirmationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	snap, err := h.reservationCommands.CheckIn(c.Request.Context(), req.ConfirmationCode)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Messages[0])
			return
		}
		switch {
		case errors.Is(err, commands.ErrCheckInNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No se puede realizar el check-in sin una reserva confirmada")
		case errors.Is(err, commands.ErrBeforeReservedDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "La fecha de check-in no puede ser anterior a la reservada")
		case errors.Is(err, commands.ErrRoomWalkInOccupied):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "La habitación ya está ocupada")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckIn(snap))
}

// @Summary Check out
// @Description Complete an occupied reservation and archive the stay
// @Tags frontdesk
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmationRequest true "Confirmation code"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} httperr.Response
// @Router /checkout [post]
func (h *FrontDeskHandler) CheckOut(c *gin.Context) {
	var req reqdto.ConfirmationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	snap, err := h.reservationCommands.CheckOut(c.Request.Context(), req.ConfirmationCode)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Messages[0])
			return
		}
		if errors.Is(err, commands.ErrCheckOutNotAllowed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "La habitación no se encuentra ocupada, no se puede realizar el check-out")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckOut(snap))
}

// @Summary List stays
// @Description List every archived stay, oldest first
// @Tags frontdesk
// @Produce json
// @Success 200 {array} resdto.StayResponse
// @Router /estadias [get]
func (h *FrontDeskHandler) ListStays(c *gin.Context) {
	stays := h.stayQueries.List(c.Request.Context())

	response := make([]*resdto.StayResponse, len(stays))
	for i, stay := range stays {
		response[i] = resdto.FromStay(stay)
	}

	c.JSON(http.StatusOK, response)
}
