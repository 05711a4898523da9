package dto

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

// SettingsOverridesDTO 细化设置的覆盖值，空字段回落默认
type SettingsOverridesDTO struct {
	Persona               string `json:"persona"`
	PersonaCustom         string `json:"persona_custom"`
	Tone                  string `json:"tone"`
	OutputFormat          string `json:"output_format"`
	DataExtractionEnabled bool   `json:"data_extraction_enabled"`
	ExtractionFields      string `json:"extraction_fields"`
	ClassificationEnabled bool   `json:"classification_enabled"`
	Categories            string `json:"categories"`
}

// ToOverrides 转换为领域覆盖值
func (d SettingsOverridesDTO) ToOverrides() entity.SettingsOverrides {
	return entity.SettingsOverrides{
		Persona:               d.Persona,
		PersonaCustom:         d.PersonaCustom,
		Tone:                  d.Tone,
		OutputFormat:          d.OutputFormat,
		DataExtractionEnabled: d.DataExtractionEnabled,
		ExtractionFields:      d.ExtractionFields,
		ClassificationEnabled: d.ClassificationEnabled,
		Categories:            d.Categories,
	}
}

// ComposeRequest 确定性合成请求
type ComposeRequest struct {
	Goal     string               `json:"goal" binding:"required"`
	Context  string               `json:"context"`
	Settings SettingsOverridesDTO `json:"settings"`
}

// ComposeResponse 确定性合成响应
type ComposeResponse struct {
	Prompt       string                `json:"prompt"`
	SourceFormat string                `json:"source_format"`
	Settings     entity.PromptSettings `json:"settings"`
}

// GenerateRequest 模型生成请求。PriorPrompt 非空时走改进路径
type GenerateRequest struct {
	Goal        string               `json:"goal" binding:"required"`
	Context     string               `json:"context"`
	PriorPrompt string               `json:"prior_prompt"`
	Settings    SettingsOverridesDTO `json:"settings"`
}

// GenerateResponse 模型生成响应
type GenerateResponse struct {
	Prompt       string `json:"prompt"`
	SourceFormat string `json:"source_format"`
}

// TestPromptRequest 提示词试运行请求；prompt 省略时使用会话里最近生成的提示词
type TestPromptRequest struct {
	Prompt      string `json:"prompt"`
	SampleInput string `json:"sample_input" binding:"required"`
}

// TestPromptResponse 提示词试运行响应；source_format 提示客户端按何种格式渲染输出
type TestPromptResponse struct {
	Output       string `json:"output"`
	SourceFormat string `json:"source_format,omitempty"`
}
