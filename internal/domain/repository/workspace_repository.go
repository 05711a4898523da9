// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

// WorkspaceRepository 工作区保存记录的存取接口，按会话隔离。
// Save 总是追加，List 按插入顺序返回，DeleteByID 对不存在的 ID 静默跳过，
// 返回值表示是否真的删掉了一条记录。
type WorkspaceRepository interface {
	Save(ctx context.Context, sessionID string, record *entity.SavedPromptRecord) error
	List(ctx context.Context, sessionID string) ([]*entity.SavedPromptRecord, error)
	DeleteByID(ctx context.Context, sessionID, recordID string) (bool, error)
}
