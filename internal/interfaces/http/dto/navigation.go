package dto

// GotoRequest 页面跳转请求
type GotoRequest struct {
	Page   string `json:"page" binding:"required"`
	PostID string `json:"post_id"`
}

// NavigationResponse 当前导航状态
type NavigationResponse struct {
	CurrentPage    string `json:"current_page"`
	LoggedIn       bool   `json:"logged_in"`
	SelectedPostID string `json:"selected_post_id,omitempty"`
}
