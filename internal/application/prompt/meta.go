package prompt

import (
	"strings"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

const (
	// SystemInstruction 发给模型的系统角色指令，要求只返回最终提示词本体
	SystemInstruction = "You are an expert prompt engineer. Your job is to create high-quality, effective prompts based on user requirements. Always return ONLY the final prompt without any explanations or metadata."

	metaHeader  = "Create a professional, effective prompt based on these requirements:"
	metaClosing = "Create a clear, specific, and effective prompt that will reliably achieve the stated goal. Include all necessary instructions and constraints."
)

// metaSection 元提示词中的一个带标签小节
type metaSection struct {
	label string
	body  string
}

// AssembleMeta 把目标与设置组装成供模型消费的元提示词。
// 小节顺序固定且与合成器的片段规则保持同一套省略条件，
// 每个小节前有一个空行，结尾附固定收束语。
func AssembleMeta(goal, context string, settings entity.PromptSettings) string {
	sections := []metaSection{{"GOAL", goal}}

	if context != "" {
		sections = append(sections, metaSection{"CONTEXT TO INCLUDE", context})
	}
	if p := strings.TrimSpace(settings.Persona); p != "" && p != entity.DefaultPersona {
		sections = append(sections, metaSection{"PERSONA", "The AI should act as " + strings.ToLower(p)})
	}
	if t := settings.Tone; t != "" && t != entity.DefaultTone {
		sections = append(sections, metaSection{"TONE", "Use a " + strings.ToLower(t) + " tone"})
	}
	if f := settings.OutputFormat; f != "" && f != entity.FormatPlainText {
		sections = append(sections, metaSection{"OUTPUT FORMAT", "Response must be in " + f + " format"})
	}
	if settings.DataExtractionEnabled && strings.TrimSpace(settings.ExtractionFields) != "" {
		sections = append(sections, metaSection{"DATA EXTRACTION", "Must extract these fields: " + settings.ExtractionFields})
	}
	if settings.ClassificationEnabled && strings.TrimSpace(settings.Categories) != "" {
		sections = append(sections, metaSection{"CLASSIFICATION", "Must classify into these categories: " + settings.Categories})
	}

	var b strings.Builder
	b.WriteString(metaHeader)
	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(s.label)
		b.WriteString(": ")
		b.WriteString(s.body)
	}
	b.WriteString("\n\n")
	b.WriteString(metaClosing)
	return b.String()
}

// ImproveGoal 在已有提示词的基础上改写目标，驱动模型做改进而非重写
func ImproveGoal(goal, priorPrompt string) string {
	return goal + "I already have a prompt, please improve it for me, my Current prompt is: \n" + priorPrompt
}
