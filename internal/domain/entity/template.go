// Package entity 定义领域实体
package entity

// TemplatePreset 模板库中的命名预设，只读目录，运行期不可变
type TemplatePreset struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Goal            string `json:"goal"`
	Persona         string `json:"persona"`
	OutputFormat    string `json:"output_format"`
	Tone            string `json:"tone"`
	ContextTemplate string `json:"context_template"`
}
