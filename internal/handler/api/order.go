package api

import (
	"net/http"

	reqdto "lesson-booking/internal/handler/dto/request"
	resdto "lesson-booking/internal/handler/dto/response"
	"lesson-booking/internal/handler/httperr"
	"lesson-booking/internal/usecase/commands"
	"lesson-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.BookingCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.BookingCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Book space on one or more lessons. All lines succeed or none do.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.PlaceOrder(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description Newest first
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}
