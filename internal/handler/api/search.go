package api

import (
	"net/http"
	"strconv"

	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/handler/httperr"
	"dreamstay/internal/usecase/queries"
	"dreamstay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchQueries queries.SearchQueries
}

func NewSearchHandler(searchQueries queries.SearchQueries) *SearchHandler {
	return &SearchHandler{
		searchQueries: searchQueries,
	}
}

// @Summary Search hotels
// @Description Search available rooms by city, dates and party size
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.SearchHotelsRequest false "Search criteria (POST)"
// @Param city query string false "City (GET)"
// @Param from query string false "Check-in date dd/mm/yyyy (GET)"
// @Param to query string false "Check-out date dd/mm/yyyy (GET)"
// @Param roomType query string false "Room type or Todos (GET)"
// @Success 200 {array} queries.HotelResult
// @Failure 400 {object} httperr.Response
// @Router /hotels/search [post]
// @Router /hotels/search [get]
func (h *SearchHandler) SearchHotels(c *gin.Context) {
	var req reqdto.SearchHotelsRequest
	if c.Request.Method == http.MethodPost {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
			return
		}
	} else {
		req = searchRequestFromQuery(c)
	}

	results, err := h.searchQueries.SearchHotels(c.Request.Context(), req)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			httperr.AbortWithMessages(c, http.StatusBadRequest, err, ve.Messages)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, results)
}

// The GET form mirrors the browser's query string: dates travel as from/to
// and counts arrive as strings.
func searchRequestFromQuery(c *gin.Context) reqdto.SearchHotelsRequest {
	req := reqdto.SearchHotelsRequest{
		City:     c.Query("city"),
		CheckIn:  c.Query("from"),
		CheckOut: c.Query("to"),
		RoomType: c.DefaultQuery("roomType", "Single"),
	}

	req.Adults = queryCount(c, "adults", &req.CountsInvalid)
	req.Children = queryCount(c, "children", &req.CountsInvalid)
	req.Babies = queryCount(c, "babies", &req.CountsInvalid)

	// A malformed offset is ignored, not reported; the search then uses UTC.
	if raw, ok := c.GetQuery("tzOffset"); ok {
		if offset, err := strconv.Atoi(raw); err == nil {
			req.TzOffset = &offset
		}
	}
	return req
}

func queryCount(c *gin.Context, name string, invalid *bool) *int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*invalid = true
		return nil
	}
	return &value
}
