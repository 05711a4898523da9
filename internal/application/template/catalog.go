// Package template 提供内置提示词模板库
package template

import (
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

// presets 内置模板，顺序即列表展示顺序
var presets = []entity.TemplatePreset{
	{
		Name:            "FAQ Bot for Documentation",
		Description:     "Perfect for creating bots that answer questions from your documentation",
		Goal:            "Answer user questions based on provided documentation",
		Persona:         "Helpful technical support specialist",
		OutputFormat:    entity.FormatMarkdown,
		Tone:            "Professional and helpful",
		ContextTemplate: "Use this documentation to answer questions:\n\n{context}\n\nQuestion: {question}",
	},
	{
		Name:            "Customer Service Triage Bot",
		Description:     "Routes customer inquiries to the right department",
		Goal:            "Classify and route customer inquiries appropriately",
		Persona:         "Professional customer service representative",
		OutputFormat:    entity.FormatJSON,
		Tone:            "Friendly and efficient",
		ContextTemplate: "Categories: {categories}\n\nCustomer message: {message}\n\nClassify this inquiry.",
	},
	{
		Name:            "Code Generation Helper",
		Description:     "Generates code snippets based on requirements",
		Goal:            "Generate clean, functional code based on user specifications",
		Persona:         "Senior software engineer",
		OutputFormat:    entity.FormatCodeBlock,
		Tone:            "Technical and precise",
		ContextTemplate: "Requirements: {requirements}\n\nGenerate {language} code that meets these specifications.",
	},
	{
		Name:            "JSON Data Extractor",
		Description:     "Extracts structured data from unstructured text",
		Goal:            "Extract specific data points and format as JSON",
		Persona:         "Data processing specialist",
		OutputFormat:    entity.FormatJSON,
		Tone:            "Systematic and accurate",
		ContextTemplate: "Extract the following data from this text: {fields}\n\nText: {input_text}",
	},
}

// Catalog 只读的模板目录
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// List 返回全部模板
func (c *Catalog) List() []entity.TemplatePreset {
	out := make([]entity.TemplatePreset, len(presets))
	copy(out, presets)
	return out
}

// Get 按名称查找模板
func (c *Catalog) Get(name string) (*entity.TemplatePreset, error) {
	for i := range presets {
		if presets[i].Name == name {
			p := presets[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrTemplateNotFound.WithDetail(name)
}

// Apply 把模板内容写入会话草稿并跳转到工作台。
// 模板只覆盖目标、人设、格式、语气与上下文骨架，不触碰抽取与分类开关。
func (c *Catalog) Apply(sess *entity.Session, name string) (*entity.TemplatePreset, error) {
	p, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	sess.Draft.Goal = p.Goal
	sess.Draft.Context = p.ContextTemplate
	sess.Draft.Overrides.Persona = p.Persona
	sess.Draft.Overrides.PersonaCustom = ""
	sess.Draft.Overrides.OutputFormat = p.OutputFormat
	sess.Draft.Overrides.Tone = p.Tone
	sess.CurrentPage = entity.PageStudio
	return p, nil
}
