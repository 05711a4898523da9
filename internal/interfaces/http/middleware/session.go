package middleware

import (
	"net/http"
	"strings"

	appsession "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/session"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	// SessionTokenHeader 会话令牌响应头，新会话创建时下发
	SessionTokenHeader = "X-Session-Token"

	sessionContextKey = "session"
)

// Session 会话中间件。从 Bearer 令牌找回会话，找不到就新建一个，
// 请求结束后统一回写并刷新过期时间。
func Session(sessions *appsession.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		sess, newToken, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			dto.ServiceUnavailable(c, "session store unavailable")
			c.Abort()
			return
		}
		if newToken != "" {
			c.Header(SessionTokenHeader, newToken)
		}

		c.Set(sessionContextKey, sess)

		ctx := logger.WithContext(c.Request.Context(), logger.SessionIDKey, sess.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 处理器只改内存中的会话，落盘在这里统一做
		if err := sessions.Persist(c.Request.Context(), sess); err != nil {
			logger.Error(c.Request.Context(), "failed to persist session", err, "session_id", sess.ID)
		}
	}
}

// RequireLogin 私有页面门禁。未登录时把会话引导到登录页并拒绝请求。
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil || !sess.LoggedIn {
			if sess != nil {
				sess.CurrentPage = entity.PageLogin
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":         401,
				"message":      "login required",
				"current_page": string(entity.PageLogin),
			})
			return
		}
		c.Next()
	}
}

// SessionFromContext 取出当前请求的会话
func SessionFromContext(c *gin.Context) *entity.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
