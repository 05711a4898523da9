// Package wire 提供依赖装配
package wire

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/content"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/feedback"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/prompt"
	appsession "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/session"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/template"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/workspace"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/config"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/email"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/llm"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/persistence/memory"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/persistence/redis"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/handler"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/router"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/utils"
)

// App 装配完成的应用
type App struct {
	Router *router.Router
}

// Engine 返回底层 Gin 引擎
func (a *App) Engine() *gin.Engine {
	return a.Router.Engine()
}

// InitializeApp 手工装配整个应用。Redis 未启用时会话与工作区
// 落在进程内存里，适合单机部署与本地开发。
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	cleanup := func() {}

	var (
		redisClient   *redis.Client
		sessionRepo   repository.SessionRepository
		workspaceRepo repository.WorkspaceRepository
	)
	if cfg.Cache.Redis.Enabled {
		var err error
		redisClient, err = redis.NewClient(&cfg.Cache.Redis)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			if err := redisClient.Close(); err != nil {
				logger.Error(ctx, "failed to close redis client", err)
			}
		}
		sessionRepo = redis.NewSessionRepo(redisClient, cfg.Session.KeyPrefix, cfg.Session.TTL)
		workspaceRepo = redis.NewWorkspaceRepo(redisClient, cfg.Session.KeyPrefix, cfg.Session.TTL)
	} else {
		sessionRepo = memory.NewSessionRepo(cfg.Session.TTL)
		workspaceRepo = memory.NewWorkspaceRepo()
	}

	jwtManager := utils.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer)
	sessions := appsession.NewService(sessionRepo, jwtManager, cfg.Session.TTL)

	factory := llm.NewEinoFactory(cfg)
	prompts := prompt.NewService(factory, cfg)
	workspaces := workspace.NewService(workspaceRepo)
	templates := template.NewCatalog()
	contents := content.NewCatalog()
	feedbacks := feedback.NewService(email.NewSMTPSender(cfg))

	r := router.New(cfg)
	r.Register(router.Handlers{
		Health:     handler.NewHealthHandler(redisClient),
		Auth:       handler.NewAuthHandler(),
		Navigation: handler.NewNavigationHandler(),
		Template:   handler.NewTemplateHandler(templates),
		Content:    handler.NewContentHandler(contents),
		Studio:     handler.NewStudioHandler(),
		Prompt:     handler.NewPromptHandler(prompts),
		Workspace:  handler.NewWorkspaceHandler(workspaces),
		Feedback:   handler.NewFeedbackHandler(feedbacks),
	}, middleware.Session(sessions))

	return &App{Router: r}, cleanup, nil
}
