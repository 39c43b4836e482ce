package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/service"

	_ "github.com/Arjun-1431/bharttapp-addproduct/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc service.Order
}

func NewHandler(s service.Order) *Handler {
	return &Handler{svc: s}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/order", h.SubmitOrder)
		api.GET("/orders", h.GetAllOrders)
	}

	router.GET("/", func(c *gin.Context) {
		c.File("web/index.html")
	})

	router.Static("/web", "./web")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
			return
		}
		c.File("web/index.html")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
