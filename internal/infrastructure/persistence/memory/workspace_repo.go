package memory

import (
	"context"
	"sync"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
)

// WorkspaceRepo 互斥锁保护的内存工作区存储，按会话分桶，追加保序
type WorkspaceRepo struct {
	mu      sync.Mutex
	records map[string][]*entity.SavedPromptRecord
}

func NewWorkspaceRepo() repository.WorkspaceRepository {
	return &WorkspaceRepo{
		records: make(map[string][]*entity.SavedPromptRecord),
	}
}

func (r *WorkspaceRepo) Save(_ context.Context, sessionID string, record *entity.SavedPromptRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := *record
	r.records[sessionID] = append(r.records[sessionID], &rec)
	return nil
}

func (r *WorkspaceRepo) List(_ context.Context, sessionID string) ([]*entity.SavedPromptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.records[sessionID]
	out := make([]*entity.SavedPromptRecord, 0, len(stored))
	for _, rec := range stored {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *WorkspaceRepo) DeleteByID(_ context.Context, sessionID, recordID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.records[sessionID]
	for i, rec := range stored {
		if rec.ID == recordID {
			r.records[sessionID] = append(stored[:i], stored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
