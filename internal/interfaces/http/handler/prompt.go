package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/prompt"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// PromptHandler 提示词合成与生成处理器
type PromptHandler struct {
	prompts *prompt.Service
}

func NewPromptHandler(prompts *prompt.Service) *PromptHandler {
	return &PromptHandler{prompts: prompts}
}

// Compose 确定性合成，不经过模型
func (h *PromptHandler) Compose(c *gin.Context) {
	var req dto.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	text, settings := h.prompts.Compose(req.Goal, req.Context, req.Settings.ToOverrides())
	dto.Success(c, dto.ComposeResponse{
		Prompt:       text,
		SourceFormat: settings.OutputFormat,
		Settings:     settings,
	})
}

// Generate 经模型生成提示词，成功后结果同时落在会话里
func (h *PromptHandler) Generate(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	generated, err := h.prompts.Generate(c.Request.Context(), sess, req.Goal, req.Context, req.PriorPrompt, req.Settings.ToOverrides())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.GenerateResponse{
		Prompt:       generated.Text,
		SourceFormat: generated.SourceFormat,
	})
}

// Test 对样例输入试运行提示词；未显式传入时取会话里最近生成的那条
func (h *PromptHandler) Test(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.TestPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	promptText := req.Prompt
	sourceFormat := ""
	if promptText == "" {
		if sess.Generated == nil {
			dto.BadRequest(c, "no generated prompt in session; generate one first or pass prompt explicitly")
			return
		}
		promptText = sess.Generated.Text
		sourceFormat = sess.Generated.SourceFormat
	}

	output, err := h.prompts.Test(c.Request.Context(), promptText, req.SampleInput)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.TestPromptResponse{
		Output:       output,
		SourceFormat: sourceFormat,
	})
}
