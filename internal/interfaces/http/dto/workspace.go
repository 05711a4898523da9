package dto

import (
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

// SaveRecordRequest 保存提示词到工作区的请求
type SaveRecordRequest struct {
	Goal     string               `json:"goal"`
	Prompt   string               `json:"prompt" binding:"required"`
	Settings SettingsOverridesDTO `json:"settings"`
}

// SavedRecordDTO 工作区中的一条保存记录
type SavedRecordDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	Goal      string    `json:"goal,omitempty"`
	Persona   string    `json:"persona,omitempty"`
	Tone      string    `json:"tone,omitempty"`
	Format    string    `json:"format,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSavedRecordDTO 将领域实体转换为 DTO
func ToSavedRecordDTO(r *entity.SavedPromptRecord) SavedRecordDTO {
	return SavedRecordDTO{
		ID:        r.ID,
		Name:      r.Name,
		Prompt:    r.PromptText,
		Goal:      r.Goal,
		Persona:   r.Persona,
		Tone:      r.Tone,
		Format:    r.Format,
		CreatedAt: r.CreatedAt,
	}
}

// ToSavedRecordDTOs 批量转换
func ToSavedRecordDTOs(records []*entity.SavedPromptRecord) []SavedRecordDTO {
	out := make([]SavedRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, ToSavedRecordDTO(r))
	}
	return out
}
