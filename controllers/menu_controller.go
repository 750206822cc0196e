package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// Fixed page size for menu listings, passed explicitly on every call.
const menuPageSize = 10

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?search=&ordering=&page=
func (h *MenuController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	items, total, err := h.Svc.List(c.Query("search"), c.Query("ordering"), page, menuPageSize)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": menuPageSize})
}

// GET /menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	item, err := h.Svc.Get(uint(id))
	if err != nil {
		h.mapError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Price int64  `json:"price" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := &entity.MenuItem{Title: req.Title, Price: req.Price}
	if err := h.Svc.Create(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id
func (h *MenuController) Put(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
		Price int64  `json:"price" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Replace(uint(id), req.Title, req.Price)
	if err != nil {
		h.mapError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id
func (h *MenuController) Patch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req struct {
		Title *string `json:"title"`
		Price *int64  `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Patch(uint(id), req.Title, req.Price)
	if err != nil {
		h.mapError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		h.mapError(c, err)
		return
	}
	resp.NoContent(c)
}

func (h *MenuController) mapError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
