package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/handler"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// Handlers 路由注册所需的全部处理器
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Navigation *handler.NavigationHandler
	Template   *handler.TemplateHandler
	Content    *handler.ContentHandler
	Studio     *handler.StudioHandler
	Prompt     *handler.PromptHandler
	Workspace  *handler.WorkspaceHandler
	Feedback   *handler.FeedbackHandler
}

// Register 注册全部路由。sessionMW 为会话中间件，
// 业务路由都挂在它之下，系统端点不经过会话。
func (r *Router) Register(h Handlers, sessionMW gin.HandlerFunc) {
	// 系统端点
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/v1")
	v1.Use(sessionMW)
	{
		// 登录态
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		// 导航状态机
		v1.GET("/navigation", h.Navigation.Get)
		v1.POST("/navigation/goto", h.Navigation.Goto)

		// 公开内容
		v1.GET("/blog", h.Content.ListPosts)
		v1.GET("/blog/:id", h.Content.GetPost)
		v1.GET("/pages/privacy", h.Content.Privacy)
		v1.GET("/pages/terms", h.Content.Terms)

		// 反馈
		v1.POST("/feedback", h.Feedback.Submit)

		// 私有区域，需要登录态
		private := v1.Group("")
		private.Use(middleware.RequireLogin())
		{
			private.GET("/templates", h.Template.List)
			private.POST("/templates/apply", h.Template.Apply)

			private.GET("/studio/draft", h.Studio.GetDraft)
			private.PUT("/studio/draft", h.Studio.PutDraft)

			private.POST("/prompts/compose", h.Prompt.Compose)
			private.POST("/prompts/generate", h.Prompt.Generate)
			private.POST("/prompts/test", h.Prompt.Test)

			private.GET("/workspace", h.Workspace.List)
			private.POST("/workspace", h.Workspace.Save)
			private.DELETE("/workspace/:id", h.Workspace.Delete)
		}
	}
}
