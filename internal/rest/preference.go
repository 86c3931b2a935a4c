package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/rest/request"
)

type PreferenceHandler struct {
	Service domain.PreferenceUsecase
}

func NewPreferenceHandler(svc domain.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{
		Service: svc,
	}
}

// Rate stores the authenticated user's score for the creator in the path.
func (h *PreferenceHandler) Rate(c *gin.Context) {
	creatorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || creatorID <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	uid := userID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return
	}

	var req request.Preference
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	pref := req.ToDomain(uid, creatorID)
	if err := h.Service.Rate(c.Request.Context(), &pref); err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creator_id": pref.CreatorID,
		"score":      pref.Score,
	})
}
