package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
	"github.com/Guyuepp/creatorhub/internal/rest/middleware"
	"github.com/Guyuepp/creatorhub/internal/rest/response"
)

// PostHandler  represent the httphandler for post
type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

// userID returns the authenticated user id, 0 for anonymous requests.
func userID(c *gin.Context) int64 {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetByID will get post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	p, err := h.Service.GetByID(c.Request.Context(), id, userID(c))
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&p))
}

// FetchFeed will fetch free posts based on given params
func (h *PostHandler) FetchFeed(c *gin.Context) {
	num, err := strconv.ParseInt(c.Query("num"), 10, 64)
	if err != nil {
		num = repository.DefaultPageNum
	}
	cursor := c.Query("cursor")

	list, nextCursor, err := h.Service.FetchFeed(c.Request.Context(), cursor, num)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}
	res := make([]response.Post, len(list))
	for i := range list {
		res[i] = response.NewPostFromDomain(&list[i])
	}
	c.Header(`X-Cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}
