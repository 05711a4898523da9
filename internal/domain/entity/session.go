// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page 导航页面
type Page string

// 页面枚举
const (
	PageHome      Page = "home"
	PageLogin     Page = "login"
	PageStudio    Page = "studio"
	PageWorkspace Page = "workspace"
	PageTemplates Page = "templates"
	PageBlog      Page = "blog"
	PageBlogPost  Page = "blog_post"
	PagePrivacy   Page = "privacy"
	PageTerms     Page = "terms"
	PageFeedback  Page = "feedback"
)

var knownPages = map[Page]bool{
	PageHome:      true,
	PageLogin:     true,
	PageStudio:    true,
	PageWorkspace: true,
	PageTemplates: true,
	PageBlog:      true,
	PageBlogPost:  true,
	PagePrivacy:   true,
	PageTerms:     true,
	PageFeedback:  true,
}

// ParsePage 解析页面名称，未知名称返回 false
func ParsePage(name string) (Page, bool) {
	p := Page(name)
	return p, knownPages[p]
}

// RequiresLogin 页面是否要求已登录
func (p Page) RequiresLogin() bool {
	switch p {
	case PageStudio, PageWorkspace, PageTemplates, PageFeedback:
		return true
	default:
		return false
	}
}

// StudioDraft 工作室表单的当前内容，模板应用会预填其中的覆盖层
type StudioDraft struct {
	Goal        string            `json:"goal"`
	Context     string            `json:"context"`
	PriorPrompt string            `json:"prior_prompt,omitempty"`
	Overrides   SettingsOverrides `json:"overrides"`
}

// Session 单用户会话状态，会话结束即销毁
type Session struct {
	ID             string      `json:"id"`
	LoggedIn       bool        `json:"logged_in"`
	CurrentPage    Page        `json:"current_page"`
	SelectedPostID string      `json:"selected_post_id,omitempty"`
	Draft          StudioDraft `json:"draft"`
	// Generated 最近一次生成的提示词；生成失败不得覆盖该槽位
	Generated *GeneratedPrompt `json:"generated,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewSession 创建初始会话：home 页、未登录、空工作区
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New().String(),
		LoggedIn:    false,
		CurrentPage: PageHome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch 更新最后活动时间
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
