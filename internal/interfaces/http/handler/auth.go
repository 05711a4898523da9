package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/navigation"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/metrics"
)

// AuthHandler 登录态处理器。只校验凭据是否填写，不验证真伪。
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login 登录。两项凭据齐全即放行并跳转工作台。
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := navigation.Login(sess, req.Email, req.Password); err != nil {
		metrics.LoginTotal.WithLabelValues("rejected").Inc()
		dto.Fail(c, err)
		return
	}
	metrics.LoginTotal.WithLabelValues("success").Inc()
	dto.Success(c, dto.ToSessionStateResponse(sess))
}

// Logout 退出登录，回到首页。工作区内容保留。
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	navigation.Logout(sess)
	dto.Success(c, dto.ToSessionStateResponse(sess))
}
