// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

// SessionRepository 会话状态存取接口。
// 会话按 TTL 过期，过期即视为会话销毁，不做跨会话持久化。
type SessionRepository interface {
	// Get 获取会话，不存在时返回 (nil, nil)
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Put 写入会话并刷新过期时间
	Put(ctx context.Context, session *entity.Session) error
	// Delete 删除会话，不存在时为静默空操作
	Delete(ctx context.Context, id string) error
}
