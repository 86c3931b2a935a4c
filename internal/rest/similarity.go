package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

type SimilarityHandler struct {
	Service domain.SimilarityUsecase
}

func NewSimilarityHandler(svc domain.SimilarityUsecase) *SimilarityHandler {
	return &SimilarityHandler{
		Service: svc,
	}
}

// Rebuild runs a similarity rebuild synchronously. The caller's secret is
// checked by middleware.RequireUpdateSecret before this handler runs.
func (h *SimilarityHandler) Rebuild(c *gin.Context) {
	// 客户端断开或请求超时不应中断已经开始的重建
	ctx := context.WithoutCancel(c.Request.Context())

	res, err := h.Service.Rebuild(ctx)
	if err != nil {
		code := getStatusCode(err)
		c.JSON(code, ResponseError{Message: errorMessage(code, err)})
		return
	}

	logrus.Infof("similarity rebuild triggered by %s: %d users, %d pairs", c.ClientIP(), res.Users, res.Pairs)
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"users":       res.Users,
		"pairs":       res.Pairs,
		"duration_ms": res.Duration.Milliseconds(),
	})
}
