package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/rest/request"
	"github.com/DajanaD/comment-board/internal/rest/response"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registered"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.Token{AccessToken: token, TokenType: "bearer"})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	user, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}

// UpdateAutoReply lets the authenticated user change their own auto-reply
// preferences. The user id comes from the token, not from the URL.
func (h *UserHandler) UpdateAutoReply(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusForbidden, ResponseError{Message: domain.ErrForbidden.Error()})
		return
	}

	var req request.AutoReply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	user, err := h.Service.UpdateAutoReply(c.Request.Context(), userID, req.Enabled, req.DelaySeconds)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}
