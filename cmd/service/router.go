package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/app/response"
	"github.com/gorlea-ink/gorlea/cmd/service/handler"
	"github.com/gorlea-ink/gorlea/cmd/service/middleware"
	"github.com/gorlea-ink/gorlea/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(gin.Recovery())
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.AcceptLanguage())

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	// The public generation endpoint keeps the exact wire contract its
	// clients rely on: POST only, no auth, literal json bodies.
	s.Engine.POST("/api/generate-poem", s.GeneratePoem)
	s.Engine.HandleMethodNotAllowed = true
	s.Engine.NoMethod(func(c *gin.Context) {
		if c.Request.URL.Path == "/api/generate-poem" {
			handler.PoemMethodNotAllowed(c)
			return
		}
		c.Status(http.StatusMethodNotAllowed)
	})
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		s.Engine.Handle(m, "/api/generate-poem", handler.PoemMethodNotAllowed)
	}

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/register", s.Register)
		apiV1.POST("/login", s.Login)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", s.UpdateUserProfile)
			user.POST("/logout", s.Logout)
			user.POST("/secret/token", s.CreateAccessToken)
			user.GET("/secret/tokens", s.GetUserAccessTokens)
			user.DELETE("/secret/token", s.DeleteAccessToken)
		}

		entry := authed.Group("/entry")
		{
			entry.POST("", s.CreateEntry)
			entry.GET("/list", s.ListEntries)
			entry.GET("/:id", s.GetEntry)
			entry.DELETE("/:id", s.DeleteEntry)
			entry.DELETE("", s.ClearEntries)
		}

		memory := authed.Group("/memory")
		{
			memory.GET("", s.GetMemoryProfile)
			memory.PUT("", s.SaveMemoryProfile)
			memory.DELETE("", s.DeleteMemoryProfile)
		}

		authed.POST("/transcribe", s.Transcribe)
	}
}
