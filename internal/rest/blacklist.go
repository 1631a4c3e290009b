package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/rest/request"
	"github.com/DajanaD/comment-board/internal/rest/response"
)

type BlacklistHandler struct {
	Service domain.BlacklistUsecase
}

func NewBlacklistHandler(svc domain.BlacklistUsecase) *BlacklistHandler {
	return &BlacklistHandler{
		Service: svc,
	}
}

func (h *BlacklistHandler) Fetch(c *gin.Context) {
	words, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.BlacklistWord, len(words))
	for i := range words {
		res[i] = response.NewBlacklistWordFromDomain(&words[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *BlacklistHandler) AddWord(c *gin.Context) {
	var req request.AddBlacklistWord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	word, err := h.Service.Add(c.Request.Context(), req.Word)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewBlacklistWordFromDomain(&word))
}

func (h *BlacklistHandler) RemoveWord(c *gin.Context) {
	word := c.Param("word")
	if err := h.Service.Remove(c.Request.Context(), word); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
