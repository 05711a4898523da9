package prompt

import (
	"strings"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

// AggregateSettings 把零散的覆盖项归并成一份完整设置。
// 未提供的项落到默认值；人设选中哨兵值时以自定义文本替换，
// 自定义文本为空则回落默认人设。
func AggregateSettings(o entity.SettingsOverrides) entity.PromptSettings {
	s := entity.DefaultSettings()

	persona := strings.TrimSpace(o.Persona)
	if persona == entity.PersonaCustomSentinel {
		persona = strings.TrimSpace(o.PersonaCustom)
	}
	if persona != "" {
		s.Persona = persona
	}

	if t := strings.TrimSpace(o.Tone); t != "" {
		s.Tone = t
	}
	if f := strings.TrimSpace(o.OutputFormat); f != "" {
		s.OutputFormat = f
	}

	s.DataExtractionEnabled = o.DataExtractionEnabled
	s.ExtractionFields = o.ExtractionFields
	s.ClassificationEnabled = o.ClassificationEnabled
	s.Categories = o.Categories
	return s
}
