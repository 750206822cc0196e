package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Svc *services.GroupService
}

func NewGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s}
}

// GET /groups/:group/users
func (h *GroupController) ListMembers(c *gin.Context) {
	users, err := h.Svc.ListMembers(c.Param("group"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// POST /groups/:group/users
func (h *GroupController) AddMember(c *gin.Context) {
	var req struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "user id required")
		return
	}

	user, err := h.Svc.AddMember(c.Param("group"), req.UserID)
	if err != nil {
		h.mapError(c, err)
		return
	}
	resp.Created(c, user)
}

// DELETE /groups/:group/users/:userId
func (h *GroupController) RemoveMember(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := h.Svc.RemoveMember(c.Param("group"), uint(userID)); err != nil {
		h.mapError(c, err)
		return
	}
	resp.NoContent(c)
}

func (h *GroupController) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotAMember):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
