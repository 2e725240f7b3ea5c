package handler

import (
	"net/http"

	"shelf_life/inventory/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
)

type StaffHandler struct {
	store StaffStore
}

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register adds a staff member on behalf of an existing one.
func (h *StaffHandler) Register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.NewNotValid(err, "invalid credentials"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	id, err := h.store.CreateStaff(c.Request.Context(), req.Username, hash)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("staff registered id=%d username=%s by=%s", id, req.Username, c.GetString(auth.UsernameKey))
	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username})
}

// Login exchanges credentials for an access token.
func (h *StaffHandler) Login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.NewNotValid(err, "invalid credentials"))
		return
	}

	member, err := h.store.GetStaffByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, errors.NotFound) {
		writeError(c, errors.Unauthorizedf("invalid credentials"))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if !auth.CheckPassword(member.PasswordHash, req.Password) {
		writeError(c, errors.Unauthorizedf("invalid credentials"))
		return
	}

	token, err := auth.GenerateAccessToken(member.ID, member.Username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
