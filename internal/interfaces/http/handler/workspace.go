package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/prompt"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/workspace"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// WorkspaceHandler 工作区处理器
type WorkspaceHandler struct {
	workspaces *workspace.Service
}

func NewWorkspaceHandler(workspaces *workspace.Service) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces}
}

// List 按保存顺序列出当前会话的全部记录
func (h *WorkspaceHandler) List(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	records, err := h.workspaces.List(c.Request.Context(), sess.ID)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.ToSavedRecordDTOs(records))
}

// Save 保存一段提示词。同名重复保存会生成独立记录。
func (h *WorkspaceHandler) Save(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.SaveRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	settings := prompt.AggregateSettings(req.Settings.ToOverrides())
	record, err := h.workspaces.Save(c.Request.Context(), sess.ID, req.Goal, req.Prompt, settings)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, dto.ToSavedRecordDTO(record))
}

// Delete 删除一条记录，记录不存在时同样视为成功
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	if err := h.workspaces.Delete(c.Request.Context(), sess.ID, c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}
