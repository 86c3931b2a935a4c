package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/creatorhub/domain"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// ToggleLike likes the post in the path, or removes the like if it is already there.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid := userID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return
	}

	liked, err := h.Service.ToggleLike(c.Request.Context(), postID, uid)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
