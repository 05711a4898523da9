package dto

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

// LoginRequest 登录请求。只做存在性校验，不验证凭据真伪
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionStateResponse 会话状态响应
type SessionStateResponse struct {
	SessionID      string `json:"session_id"`
	LoggedIn       bool   `json:"logged_in"`
	CurrentPage    string `json:"current_page"`
	SelectedPostID string `json:"selected_post_id,omitempty"`
}

// ToSessionStateResponse 将会话实体转换为 DTO
func ToSessionStateResponse(s *entity.Session) SessionStateResponse {
	return SessionStateResponse{
		SessionID:      s.ID,
		LoggedIn:       s.LoggedIn,
		CurrentPage:    string(s.CurrentPage),
		SelectedPostID: s.SelectedPostID,
	}
}
