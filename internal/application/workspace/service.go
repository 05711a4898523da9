// Package workspace 管理会话工作区中保存的提示词
package workspace

import (
	"context"
	"strings"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/metrics"
)

// Service 工作区应用服务
type Service struct {
	repo repository.WorkspaceRepository
}

func NewService(repo repository.WorkspaceRepository) *Service {
	return &Service{repo: repo}
}

// Save 把一段提示词存入会话工作区。记录名取目标文本，超长截断；
// 重复保存同名内容会生成独立记录，互不覆盖。
func (s *Service) Save(ctx context.Context, sessionID, goal, promptText string, settings entity.PromptSettings) (*entity.SavedPromptRecord, error) {
	if strings.TrimSpace(promptText) == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("prompt text is required")
	}
	record := entity.NewSavedPromptRecord(goal, promptText, settings)
	if err := s.repo.Save(ctx, sessionID, record); err != nil {
		return nil, err
	}
	metrics.WorkspaceSaveTotal.Inc()
	return record, nil
}

// List 按保存顺序返回会话的全部记录
func (s *Service) List(ctx context.Context, sessionID string) ([]*entity.SavedPromptRecord, error) {
	return s.repo.List(ctx, sessionID)
}

// Delete 删除指定记录，ID 不存在时静默成功，计数只统计真正删掉的
func (s *Service) Delete(ctx context.Context, sessionID, recordID string) error {
	removed, err := s.repo.DeleteByID(ctx, sessionID, recordID)
	if err != nil {
		return err
	}
	if removed {
		metrics.WorkspaceDeleteTotal.Inc()
	}
	return nil
}
