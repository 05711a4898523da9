package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/feedback"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

// FeedbackHandler 用户反馈处理器
type FeedbackHandler struct {
	feedbacks *feedback.Service
}

func NewFeedbackHandler(feedbacks *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

// Submit 提交一条反馈。校验失败返回 400，
// 投递失败不算请求失败，只在响应里标记未送达。
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	err := h.feedbacks.Submit(c.Request.Context(), feedback.Message{
		Name:    req.Name,
		Email:   req.Email,
		Type:    req.Type,
		Content: req.Message,
	})
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeValidationFailed {
			dto.Fail(c, err)
			return
		}
		// 投递层面的失败是尽力而为
		dto.Success(c, dto.FeedbackResponse{Delivered: false})
		return
	}
	dto.Success(c, dto.FeedbackResponse{Delivered: true})
}
