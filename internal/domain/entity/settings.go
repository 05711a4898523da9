// Package entity 定义领域实体
package entity

// 刻度型设置的取值
const (
	DefaultPersona = "Helpful assistant"
	DefaultTone    = "Professional"

	// PersonaCustomSentinel 人设下拉框中表示自定义输入的哨兵值
	PersonaCustomSentinel = "Custom..."
)

// Tone 语气取值
const (
	ToneProfessional = "Professional"
	ToneFriendly     = "Friendly"
	ToneTechnical    = "Technical"
	ToneCasual       = "Casual"
	ToneFormal       = "Formal"
)

// OutputFormat 输出格式取值
const (
	FormatPlainText = "PlainText"
	FormatJSON      = "JSON"
	FormatMarkdown  = "Markdown"
	FormatCodeBlock = "CodeBlock"
	FormatXML       = "XML"
	FormatCSV       = "CSV"
)

// PromptSettings 一次渲染的规范化设置，聚合完成后不再修改
type PromptSettings struct {
	Persona               string `json:"persona"`
	Tone                  string `json:"tone"`
	OutputFormat          string `json:"output_format"`
	DataExtractionEnabled bool   `json:"data_extraction_enabled"`
	ExtractionFields      string `json:"extraction_fields"`
	ClassificationEnabled bool   `json:"classification_enabled"`
	Categories            string `json:"categories"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() PromptSettings {
	return PromptSettings{
		Persona:      DefaultPersona,
		Tone:         DefaultTone,
		OutputFormat: FormatPlainText,
	}
}

// SettingsOverrides 用户通过细化控件与任务模块显式提供的覆盖值。
// 空字符串表示未覆盖，静默回落到默认值。
type SettingsOverrides struct {
	Persona string `json:"persona,omitempty"`
	// PersonaCustom 仅在 Persona 为哨兵值 "Custom..." 时生效
	PersonaCustom         string `json:"persona_custom,omitempty"`
	Tone                  string `json:"tone,omitempty"`
	OutputFormat          string `json:"output_format,omitempty"`
	DataExtractionEnabled bool   `json:"data_extraction_enabled,omitempty"`
	ExtractionFields      string `json:"extraction_fields,omitempty"`
	ClassificationEnabled bool   `json:"classification_enabled,omitempty"`
	Categories            string `json:"categories,omitempty"`
}
