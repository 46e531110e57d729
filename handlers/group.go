package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/store"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

// POST /api/groups
func (h *Handler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	group := models.Group{
		Name:        req.Name,
		Description: req.Description,
		Members:     buildGroupMembers(req.Members),
	}
	created := h.store.AddGroup(group)
	utils.SuccessResponse(c, http.StatusCreated, "Group created", created)
}

// GET /api/groups
func (h *Handler) ListGroups(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.Groups())
}

// GET /api/groups/:id
func (h *Handler) GetGroup(c *gin.Context) {
	group, err := h.store.Group(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", group)
}

// PUT /api/groups/:id
func (h *Handler) UpdateGroup(c *gin.Context) {
	var req models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	upd := store.GroupUpdate{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Members != nil {
		members := buildGroupMembers(req.Members)
		if !hasProtectedMember(members) {
			utils.BadRequest(c, "the group owner cannot be removed")
			return
		}
		upd.Members = members
	}

	updated, err := h.store.UpdateGroup(c.Param("id"), upd)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Group updated", updated)
}

// DELETE /api/groups/:id
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.store.DeleteGroup(c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Group and its expenses deleted", nil)
}

// GET /api/groups/:id/expenses
func (h *Handler) GetGroupExpenses(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Group(id); err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", h.store.GroupExpenses(id))
}

// GET /api/groups/:id/balances
func (h *Handler) GetGroupBalances(c *gin.Context) {
	balances, err := h.store.MemberBalances(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", balances)
}

// buildGroupMembers converts member inputs, assigns ids to new members, and
// guarantees the session user is part of the group.
func buildGroupMembers(inputs []models.UserInput) []models.User {
	members := make([]models.User, 0, len(inputs)+1)
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		members = append(members, models.User{ID: id, Name: in.Name, Email: in.Email})
	}
	if !hasProtectedMember(members) {
		members = append([]models.User{{
			ID:    models.ProtectedMemberID,
			Name:  "You",
			Email: "you@example.com",
		}}, members...)
	}
	return members
}

func hasProtectedMember(members []models.User) bool {
	for _, m := range members {
		if m.ID == models.ProtectedMemberID {
			return true
		}
	}
	return false
}
