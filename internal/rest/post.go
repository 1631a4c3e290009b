package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/rest/request"
	"github.com/DajanaD/comment-board/internal/rest/response"
)

type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req request.CreatePost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	post := req.ToDomain()
	if err := h.Service.Create(c.Request.Context(), &post); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	post, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

func (h *PostHandler) Fetch(c *gin.Context) {
	posts, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Post, len(posts))
	for i := range posts {
		res[i] = response.NewPostFromDomain(&posts[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.UpdatePost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	post, err := h.Service.Update(c.Request.Context(), id, req.CommentID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	post, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}
