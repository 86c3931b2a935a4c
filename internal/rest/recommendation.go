package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/rest/response"
)

type RecommendationHandler struct {
	Service domain.RecommendationUsecase
}

func NewRecommendationHandler(svc domain.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		Service: svc,
	}
}

// GetRecommendations returns the ranked post list for the authenticated user.
// The branch that produced it is reported in the X-Recommendation-Source header.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	uid := userID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return
	}

	limit := domain.DefaultRecommendationLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		limit = min(n, domain.MaxRecommendationLimit)
	}

	list, source, err := h.Service.GetRecommendations(c.Request.Context(), uid, limit)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}

	res := make([]response.Recommendation, len(list))
	for i := range list {
		res[i] = response.NewRecommendationFromDomain(&list[i])
	}
	c.Header("X-Recommendation-Source", string(source))
	c.JSON(http.StatusOK, res)
}
