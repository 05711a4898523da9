package dto

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

// StudioDraftRequest 工作台草稿写入请求
type StudioDraftRequest struct {
	Goal        string               `json:"goal"`
	Context     string               `json:"context"`
	PriorPrompt string               `json:"prior_prompt"`
	Settings    SettingsOverridesDTO `json:"settings"`
}

// StudioDraftResponse 工作台草稿与最近一次生成结果
type StudioDraftResponse struct {
	Goal        string               `json:"goal"`
	Context     string               `json:"context"`
	PriorPrompt string               `json:"prior_prompt"`
	Settings    SettingsOverridesDTO `json:"settings"`
	Generated   *GenerateResponse    `json:"generated,omitempty"`
}

// ToStudioDraftResponse 将会话草稿转换为 DTO
func ToStudioDraftResponse(s *entity.Session) StudioDraftResponse {
	resp := StudioDraftResponse{
		Goal:        s.Draft.Goal,
		Context:     s.Draft.Context,
		PriorPrompt: s.Draft.PriorPrompt,
		Settings: SettingsOverridesDTO{
			Persona:               s.Draft.Overrides.Persona,
			PersonaCustom:         s.Draft.Overrides.PersonaCustom,
			Tone:                  s.Draft.Overrides.Tone,
			OutputFormat:          s.Draft.Overrides.OutputFormat,
			DataExtractionEnabled: s.Draft.Overrides.DataExtractionEnabled,
			ExtractionFields:      s.Draft.Overrides.ExtractionFields,
			ClassificationEnabled: s.Draft.Overrides.ClassificationEnabled,
			Categories:            s.Draft.Overrides.Categories,
		},
	}
	if s.Generated != nil {
		resp.Generated = &GenerateResponse{
			Prompt:       s.Generated.Text,
			SourceFormat: s.Generated.SourceFormat,
		}
	}
	return resp
}
