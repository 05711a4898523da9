package prompt

import (
	"strings"
	"testing"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

func TestAssembleMetaMinimal(t *testing.T) {
	got := AssembleMeta("Build a chatbot", "", entity.DefaultSettings())

	if !strings.HasPrefix(got, metaHeader) {
		t.Errorf("meta prompt must start with the fixed header: %q", got)
	}
	if !strings.HasSuffix(got, metaClosing) {
		t.Errorf("meta prompt must end with the fixed closing: %q", got)
	}
	if !strings.Contains(got, "\n\nGOAL: Build a chatbot") {
		t.Errorf("meta prompt missing GOAL section: %q", got)
	}
	// 默认设置不产生额外小节
	for _, label := range []string{"CONTEXT TO INCLUDE:", "PERSONA:", "TONE:", "OUTPUT FORMAT:", "DATA EXTRACTION:", "CLASSIFICATION:"} {
		if strings.Contains(got, label) {
			t.Errorf("default settings should not emit %q: %q", label, got)
		}
	}
}

func TestAssembleMetaAllSections(t *testing.T) {
	s := entity.PromptSettings{
		Persona:               "Data Analyst",
		Tone:                  entity.ToneFormal,
		OutputFormat:          entity.FormatJSON,
		DataExtractionEnabled: true,
		ExtractionFields:      "name, total",
		ClassificationEnabled: true,
		Categories:            "invoice, receipt",
	}

	got := AssembleMeta("Parse invoices", "sample invoice text", s)

	wantSections := []string{
		"GOAL: Parse invoices",
		"CONTEXT TO INCLUDE: sample invoice text",
		"PERSONA: The AI should act as data analyst",
		"TONE: Use a formal tone",
		"OUTPUT FORMAT: Response must be in JSON format",
		"DATA EXTRACTION: Must extract these fields: name, total",
		"CLASSIFICATION: Must classify into these categories: invoice, receipt",
	}
	lastIdx := -1
	for _, sec := range wantSections {
		idx := strings.Index(got, sec)
		if idx < 0 {
			t.Errorf("missing section %q in %q", sec, got)
			continue
		}
		if idx < lastIdx {
			t.Errorf("section %q out of order", sec)
		}
		lastIdx = idx
	}
}

func TestAssembleMetaSectionSpacing(t *testing.T) {
	s := entity.DefaultSettings()
	s.OutputFormat = entity.FormatMarkdown

	got := AssembleMeta("Write docs", "", s)
	if !strings.Contains(got, "\n\nOUTPUT FORMAT: Response must be in Markdown format\n\n") {
		t.Errorf("each section must be preceded and followed by a blank line: %q", got)
	}
}

func TestImproveGoal(t *testing.T) {
	got := ImproveGoal("Make it better", "old prompt text")
	want := "Make it betterI already have a prompt, please improve it for me, my Current prompt is: \nold prompt text"
	if got != want {
		t.Errorf("ImproveGoal() = %q, want %q", got, want)
	}
}
