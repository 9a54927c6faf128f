package handler

import (
	"github.com/DwayneDumaguing/jamsody-next/internal/service"
	"github.com/DwayneDumaguing/jamsody-next/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
	urls     *storage.URLBuilder
}

func New(services *service.Service, urls *storage.URLBuilder) *Handler {
	return &Handler{
		services: services,
		urls:     urls,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
	}))

	r.Static("/public", "./public")
	r.LoadHTMLGlob("templates/*.tmpl")

	r.GET("/", h.homePage)
	r.GET("/u/:username", h.profilePage)
	r.GET("/e/:code", h.eventPage)
	r.GET("/apple-app-site-association", h.appleAppSiteAssociation)
	r.GET("/.well-known/apple-app-site-association", h.appleAppSiteAssociation)
	r.GET("/healthz", h.health)

	return r
}
