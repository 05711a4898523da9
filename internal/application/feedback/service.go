// Package feedback 处理用户反馈的校验与投递
package feedback

import (
	"context"
	"strings"

	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/metrics"
)

// 反馈类型取值
var feedbackTypes = map[string]bool{
	"Bug Report":       true,
	"Feature Request":  true,
	"General Feedback": true,
	"Question":         true,
}

// Message 一条待投递的反馈
type Message struct {
	Name    string
	Email   string
	Type    string
	Content string
}

// Sender 反馈投递的出站接口（port），投递失败以 error 体现
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Service 反馈应用服务
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit 校验并投递一条反馈。四个字段均必填，邮箱需含 '@'，
// 类型必须是预设之一。投递是尽力而为，失败返回错误但不中断会话。
func (s *Service) Submit(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Type) == "" ||
		strings.TrimSpace(msg.Content) == "" {
		return apperrors.ErrValidationFailed.WithDetail("name, email, type and message are all required")
	}
	if !strings.Contains(msg.Email, "@") {
		return apperrors.ErrValidationFailed.WithDetail("invalid email address")
	}
	if !feedbackTypes[msg.Type] {
		return apperrors.ErrValidationFailed.WithDetail("unknown feedback type: " + msg.Type)
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		metrics.FeedbackSentTotal.WithLabelValues(msg.Type, "error").Inc()
		logger.Error(ctx, "feedback delivery failed", err, "type", msg.Type)
		return apperrors.ErrFeedbackFailed.WithError(err)
	}
	metrics.FeedbackSentTotal.WithLabelValues(msg.Type, "success").Inc()
	return nil
}
