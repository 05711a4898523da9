package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// StudioHandler 工作台草稿处理器
type StudioHandler struct{}

func NewStudioHandler() *StudioHandler {
	return &StudioHandler{}
}

// GetDraft 读取当前会话的草稿与最近一次生成结果
func (h *StudioHandler) GetDraft(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	dto.Success(c, dto.ToStudioDraftResponse(sess))
}

// PutDraft 整体覆盖草稿，未提交的字段按零值写入
func (h *StudioHandler) PutDraft(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.StudioDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	sess.Draft.Goal = req.Goal
	sess.Draft.Context = req.Context
	sess.Draft.PriorPrompt = req.PriorPrompt
	sess.Draft.Overrides = req.Settings.ToOverrides()

	dto.Success(c, dto.ToStudioDraftResponse(sess))
}
