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

// SessionRepo 基于 Redis 的会话存储，整份会话序列化为 JSON，
// 过期由 Redis TTL 承担
type SessionRepo struct {
	client    *Client
	keyPrefix string
	ttl       time.Duration
}

func NewSessionRepo(client *Client, keyPrefix string, ttl time.Duration) repository.SessionRepository {
	return &SessionRepo{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *SessionRepo) key(id string) string {
	return fmt.Sprintf("%s:session:%s", r.keyPrefix, id)
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id))
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to load session")
	}

	var sess entity.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to decode session")
	}
	return &sess, nil
}

func (r *SessionRepo) Put(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to encode session")
	}
	if err := r.client.Set(ctx, r.key(session.ID), data, r.ttl); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to store session")
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to delete session")
	}
	return nil
}
