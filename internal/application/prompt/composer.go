// Package prompt 提供提示词合成的核心逻辑
package prompt

import (
	"strings"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

// Compose 按固定文本规则确定性合成提示词，不调用任何外部模型。
// 片段顺序固定：人设 -> 任务 -> 上下文 -> 格式 -> 语气 -> 字段抽取 -> 分类，
// 片段之间以一个空行分隔，省略的片段不留空段。
func Compose(goal, context string, settings entity.PromptSettings) string {
	parts := make([]string, 0, 7)

	if p := strings.TrimSpace(settings.Persona); p != "" && p != entity.DefaultPersona {
		parts = append(parts, "You are "+strings.ToLower(p)+".")
	}

	parts = append(parts, "Your task: "+goal)

	if context != "" {
		parts = append(parts, "Use this context:\n"+context)
	}

	if f := settings.OutputFormat; f != "" && f != entity.FormatPlainText {
		parts = append(parts, "Provide your response in "+f+" format.")
	}

	if t := settings.Tone; t != "" && t != entity.DefaultTone {
		parts = append(parts, "Use a "+strings.ToLower(t)+" tone.")
	}

	// 开关关闭时字段值不得泄漏进输出，开关打开但字段为空同样跳过
	if settings.DataExtractionEnabled && strings.TrimSpace(settings.ExtractionFields) != "" {
		parts = append(parts, "Extract these specific fields: "+settings.ExtractionFields)
	}

	if settings.ClassificationEnabled && strings.TrimSpace(settings.Categories) != "" {
		parts = append(parts, "Classify into one of these categories: "+settings.Categories)
	}

	return strings.Join(parts, "\n\n")
}
