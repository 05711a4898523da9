// Package memory 提供进程内存储实现，用于未启用 Redis 的部署与测试
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
)

type sessionEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// SessionRepo 互斥锁保护的内存会话存储，读取时惰性淘汰过期项
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

func NewSessionRepo(ttl time.Duration) repository.SessionRepository {
	return &SessionRepo{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

func (r *SessionRepo) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(r.sessions, id)
		return nil, nil
	}
	sess := e.session
	return &sess, nil
}

func (r *SessionRepo) Put(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = sessionEntry{
		session:   *session,
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
