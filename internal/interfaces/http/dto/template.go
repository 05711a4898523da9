package dto

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

// TemplateDTO 模板条目
type TemplateDTO struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Goal            string `json:"goal"`
	Persona         string `json:"persona"`
	OutputFormat    string `json:"output_format"`
	Tone            string `json:"tone"`
	ContextTemplate string `json:"context_template"`
}

// ApplyTemplateRequest 套用模板请求
type ApplyTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToTemplateDTO 将领域实体转换为 DTO
func ToTemplateDTO(p entity.TemplatePreset) TemplateDTO {
	return TemplateDTO{
		Name:            p.Name,
		Description:     p.Description,
		Goal:            p.Goal,
		Persona:         p.Persona,
		OutputFormat:    p.OutputFormat,
		Tone:            p.Tone,
		ContextTemplate: p.ContextTemplate,
	}
}

// ToTemplateDTOs 批量转换
func ToTemplateDTOs(presets []entity.TemplatePreset) []TemplateDTO {
	out := make([]TemplateDTO, 0, len(presets))
	for _, p := range presets {
		out = append(out, ToTemplateDTO(p))
	}
	return out
}
