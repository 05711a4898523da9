package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/navigation"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// NavigationHandler 页面状态机处理器
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Get 返回当前导航状态。携带 ?page= 时先按深链跳转，
// 未知页面名静默忽略，未登录访问私有页转登录页。
func (h *NavigationHandler) Get(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	if page := c.Query("page"); page != "" {
		navigation.ApplyDeepLink(sess, page, true)
	}

	dto.Success(c, dto.NavigationResponse{
		CurrentPage:    string(sess.CurrentPage),
		LoggedIn:       sess.LoggedIn,
		SelectedPostID: sess.SelectedPostID,
	})
}

// Goto 执行一次显式页面跳转
func (h *NavigationHandler) Goto(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.GotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	target, ok := entity.ParsePage(req.Page)
	if !ok {
		dto.BadRequest(c, "unknown page: "+req.Page)
		return
	}
	if target.RequiresLogin() && !sess.LoggedIn {
		sess.CurrentPage = entity.PageLogin
		dto.Unauthorized(c, "login required")
		return
	}

	if target == entity.PageBlogPost && req.PostID != "" {
		navigation.SelectPost(sess, req.PostID)
	} else {
		navigation.Apply(sess, target)
	}

	dto.Success(c, dto.NavigationResponse{
		CurrentPage:    string(sess.CurrentPage),
		LoggedIn:       sess.LoggedIn,
		SelectedPostID: sess.SelectedPostID,
	})
}
