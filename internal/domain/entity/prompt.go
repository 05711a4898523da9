// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
)

// 保存记录名称的最大长度（超出部分截断并追加省略号）
const savedNameMaxLen = 50

// GeneratedPrompt 两种合成路径的产物
type GeneratedPrompt struct {
	Text string `json:"text"`
	// SourceFormat 记录生成时的输出格式，供后续试运行渲染使用
	SourceFormat string `json:"source_format"`
}

// SavedPromptRecord 工作区中保存的提示词记录
type SavedPromptRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PromptText string    `json:"prompt"`
	CreatedAt  time.Time `json:"created_at"`

	// 冗余保存生成时的关键设置，供列表展示
	Goal    string `json:"goal"`
	Persona string `json:"persona"`
	Tone    string `json:"tone"`
	Format  string `json:"format"`
}

// NewSavedPromptRecord 由生成结果创建保存记录，ID 在保存时生成
func NewSavedPromptRecord(goal, promptText string, settings PromptSettings) *SavedPromptRecord {
	return &SavedPromptRecord{
		ID:         uuid.New().String(),
		Name:       TruncateName(goal),
		PromptText: promptText,
		CreatedAt:  time.Now().UTC(),
		Goal:       goal,
		Persona:    settings.Persona,
		Tone:       settings.Tone,
		Format:     settings.OutputFormat,
	}
}

// TruncateName 将目标文本截断为记录名称，超过 50 个字符时追加省略号
func TruncateName(goal string) string {
	runes := []rune(goal)
	if len(runes) > savedNameMaxLen {
		return string(runes[:savedNameMaxLen]) + "..."
	}
	return goal
}
