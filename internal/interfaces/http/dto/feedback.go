package dto

// FeedbackRequest 用户反馈请求
type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FeedbackResponse 反馈投递结果
type FeedbackResponse struct {
	Delivered bool `json:"delivered"`
}
