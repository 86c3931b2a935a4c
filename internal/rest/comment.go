package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
	"github.com/Guyuepp/creatorhub/internal/rest/request"
	"github.com/Guyuepp/creatorhub/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid := userID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	comment := req.ToDomain(postID, uid)
	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}
	uid := userID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), postID, commentID, uid); err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) FetchCommentsByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	num, err := strconv.ParseInt(c.Query("num"), 10, 64)
	if err != nil {
		num = repository.DefaultPageNum
	}

	list, nextCursor, err := h.Service.FetchByPost(c.Request.Context(), postID, c.Query("cursor"), num)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}
	res := make([]*response.Comment, len(list))
	for i := range list {
		res[i] = response.NewCommentFromDomain(list[i])
	}
	c.Header(`X-Cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}
