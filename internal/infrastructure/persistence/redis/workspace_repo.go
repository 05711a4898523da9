package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

// WorkspaceRepo 基于 Redis 列表的工作区存储。
// 每条记录是列表中的一段 JSON，追加保序，键随会话同周期过期。
type WorkspaceRepo struct {
	client    *Client
	keyPrefix string
	ttl       time.Duration
}

func NewWorkspaceRepo(client *Client, keyPrefix string, ttl time.Duration) repository.WorkspaceRepository {
	return &WorkspaceRepo{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *WorkspaceRepo) key(sessionID string) string {
	return fmt.Sprintf("%s:workspace:%s", r.keyPrefix, sessionID)
}

func (r *WorkspaceRepo) Save(ctx context.Context, sessionID string, record *entity.SavedPromptRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to encode record")
	}
	key := r.key(sessionID)
	if err := r.client.RPush(ctx, key, data); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to store record")
	}
	// 保存动作顺带续期，工作区与会话同寿
	if err := r.client.Expire(ctx, key, r.ttl); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to refresh workspace ttl")
	}
	return nil
}

func (r *WorkspaceRepo) List(ctx context.Context, sessionID string) ([]*entity.SavedPromptRecord, error) {
	raw, err := r.client.LRange(ctx, r.key(sessionID), 0, -1)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to list records")
	}

	records := make([]*entity.SavedPromptRecord, 0, len(raw))
	for _, item := range raw {
		var rec entity.SavedPromptRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to decode record")
		}
		records = append(records, &rec)
	}
	return records, nil
}

func (r *WorkspaceRepo) DeleteByID(ctx context.Context, sessionID, recordID string) (bool, error) {
	key := r.key(sessionID)
	raw, err := r.client.LRange(ctx, key, 0, -1)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to scan records")
	}

	for _, item := range raw {
		var rec entity.SavedPromptRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		if rec.ID == recordID {
			if err := r.client.LRem(ctx, key, 1, item); err != nil {
				return false, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to delete record")
			}
			return true, nil
		}
	}
	// 记录不存在时静默成功
	return false, nil
}
