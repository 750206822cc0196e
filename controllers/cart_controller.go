package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, subtotal, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "menu item id required")
		return
	}

	line, err := h.Svc.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "cart line already exists")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
