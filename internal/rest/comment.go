package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/rest/request"
	"github.com/DajanaD/comment-board/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment stores a new comment. The moderation status in the response
// tells the caller whether the comment was blocked on arrival.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	comment := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) Fetch(c *gin.Context) {
	comments, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *CommentHandler) FetchByOwner(c *gin.Context) {
	ownerID, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comments, err := h.Service.FetchByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	comment, err := h.Service.Update(c.Request.Context(), id, req.Description)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// DeleteComment removes a comment and echoes the removed entity back.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comment, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func paramID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// getStatusCode maps domain errors to HTTP status codes.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
