package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/recommend/internal/pkg/middleware"
	"github.com/ecodeclub/recommend/internal/recommend"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

const serviceName = "recommendation"

func initGinxServer(hdl *recommend.Handler) *egin.Component {
	res := egin.Load("web").Build()
	allowed := econf.GetStringSlice("web.allowedOrigins")
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range allowed {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder("recommend", nil).Build())
	res.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})
	hdl.PublicRoutes(res.Engine)
	return res
}
