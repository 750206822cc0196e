package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"backend/permissions"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Fixed page size for order listings, passed explicitly on every call.
const orderPageSize = 10

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — place an order from the caller's cart
func (h *OrderController) Create(c *gin.Context) {
	order, err := h.Svc.CreateFromCart(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?search=&ordering=&page=
func (h *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	orders, total, err := h.Svc.List(
		utils.CurrentUserID(c), utils.CurrentRoles(c),
		c.Query("search"), c.Query("ordering"),
		page, orderPageSize,
	)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "limit": orderPageSize})
}

// GET /orders/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	view, err := h.Svc.Detail(utils.CurrentUserID(c), utils.CurrentRoles(c), uint(orderID))
	if err != nil {
		h.mapError(c, err)
		return
	}
	if view.Order != nil {
		resp.OK(c, view.Order)
		return
	}
	resp.OK(c, view.Items)
}

// PUT/PATCH /orders/:orderId — Manager edits anything, Delivery Crew
// may only send {"status": ...}.
func (h *OrderController) Update(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	roles := utils.CurrentRoles(c)
	switch {
	case permissions.IsManager(roles):
		var in services.ManagerUpdateIn
		if err := json.Unmarshal(body, &in); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		order, err := h.Svc.ManagerUpdate(uint(orderID), &in)
		if err != nil {
			h.mapError(c, err)
			return
		}
		resp.OK(c, order)

	case permissions.IsDeliveryCrew(roles):
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		statusRaw, ok := raw["status"]
		if !ok || len(raw) > 1 {
			resp.BadRequest(c, services.ErrStatusOnly.Error())
			return
		}
		var status string
		if err := json.Unmarshal(statusRaw, &status); err != nil {
			resp.BadRequest(c, services.ErrStatusOnly.Error())
			return
		}
		order, err := h.Svc.CrewUpdateStatus(utils.CurrentUserID(c), uint(orderID), status)
		if err != nil {
			h.mapError(c, err)
			return
		}
		resp.OK(c, order)

	default:
		resp.Forbidden(c, "forbidden")
	}
}

// DELETE /orders/:orderId — Manager only (route gated)
func (h *OrderController) Delete(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := h.Svc.Delete(uint(orderID)); err != nil {
		h.mapError(c, err)
		return
	}
	resp.NoContent(c)
}

func (h *OrderController) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
