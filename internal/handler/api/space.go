package api

import (
	"net/http"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	q queries.SpaceQueries
}

func NewSpaceHandler(q queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{q: q}
}

// @Summary List spaces
// @Description List bookable spaces, optionally by type and active flag
// @Tags spaces
// @Produce json
// @Param type query string false "private_room, open_area, class_studio, boxing_ring or cardio_zone"
// @Param active query bool false "Active flag"
// @Success 200 {array} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/spaces [get]
func (h *SpaceHandler) List(c *gin.Context) {
	var query reqdto.ListSpacesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromSpaceViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get space
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/spaces/{id} [get]
func (h *SpaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid space ID format", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromSpaceView(view)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
