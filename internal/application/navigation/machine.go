// Package navigation 管理会话的页面状态机
package navigation

import (
	"strings"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

// Login 校验凭据是否齐全并切换到工作台。
// 不做真实身份验证，只要求邮箱与密码都非空。
func Login(s *entity.Session, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		s.CurrentPage = entity.PageLogin
		return apperrors.New(apperrors.CodeValidationFailed, "please enter both email and password")
	}
	s.LoggedIn = true
	s.CurrentPage = entity.PageStudio
	return nil
}

// Logout 退出登录并回到首页。工作区内容保留，下次登录仍可见。
func Logout(s *entity.Session) {
	s.LoggedIn = false
	s.CurrentPage = entity.PageHome
}

// Apply 执行一次页面跳转。目标是文章详情但尚未选文时回落到博客列表。
func Apply(s *entity.Session, target entity.Page) {
	if target == entity.PageBlogPost && s.SelectedPostID == "" {
		s.CurrentPage = entity.PageBlog
		return
	}
	s.CurrentPage = target
}

// ApplyDeepLink 解析外部传入的页面名并跳转，未知名称静默忽略。
// gated 为真时，未登录访问私有页会被重定向到登录页。
func ApplyDeepLink(s *entity.Session, name string, gated bool) {
	p, ok := entity.ParsePage(name)
	if !ok {
		return
	}
	if gated && p.RequiresLogin() && !s.LoggedIn {
		s.CurrentPage = entity.PageLogin
		return
	}
	Apply(s, p)
}

// SelectPost 记录选中的文章并进入详情页
func SelectPost(s *entity.Session, postID string) {
	s.SelectedPostID = postID
	s.CurrentPage = entity.PageBlogPost
}
