package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/template"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// TemplateHandler 模板库处理器
type TemplateHandler struct {
	catalog *template.Catalog
}

func NewTemplateHandler(catalog *template.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

// List 列出全部内置模板
func (h *TemplateHandler) List(c *gin.Context) {
	dto.Success(c, dto.ToTemplateDTOs(h.catalog.List()))
}

// Apply 把模板套入当前会话的工作台草稿
func (h *TemplateHandler) Apply(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	preset, err := h.catalog.Apply(sess, req.Name)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.ToTemplateDTO(*preset))
}
