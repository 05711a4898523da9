package prompt

import (
	"testing"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

func TestAggregateSettingsDefaults(t *testing.T) {
	got := AggregateSettings(entity.SettingsOverrides{})

	if got.Persona != entity.DefaultPersona {
		t.Errorf("Persona = %q, want %q", got.Persona, entity.DefaultPersona)
	}
	if got.Tone != entity.DefaultTone {
		t.Errorf("Tone = %q, want %q", got.Tone, entity.DefaultTone)
	}
	if got.OutputFormat != entity.FormatPlainText {
		t.Errorf("OutputFormat = %q, want %q", got.OutputFormat, entity.FormatPlainText)
	}
}

func TestAggregateSettingsOverrides(t *testing.T) {
	got := AggregateSettings(entity.SettingsOverrides{
		Persona:      "Pirate",
		Tone:         entity.ToneCasual,
		OutputFormat: entity.FormatCSV,
	})

	if got.Persona != "Pirate" || got.Tone != entity.ToneCasual || got.OutputFormat != entity.FormatCSV {
		t.Errorf("overrides not applied: %+v", got)
	}
}

func TestAggregateSettingsCustomPersona(t *testing.T) {
	got := AggregateSettings(entity.SettingsOverrides{
		Persona:       entity.PersonaCustomSentinel,
		PersonaCustom: "A medieval scribe",
	})
	if got.Persona != "A medieval scribe" {
		t.Errorf("Persona = %q, want custom text", got.Persona)
	}
}

func TestAggregateSettingsCustomPersonaEmptyFallsBack(t *testing.T) {
	got := AggregateSettings(entity.SettingsOverrides{
		Persona:       entity.PersonaCustomSentinel,
		PersonaCustom: "   ",
	})
	if got.Persona != entity.DefaultPersona {
		t.Errorf("Persona = %q, want default when custom text is blank", got.Persona)
	}
}

func TestAggregateSettingsTogglesCarried(t *testing.T) {
	got := AggregateSettings(entity.SettingsOverrides{
		DataExtractionEnabled: true,
		ExtractionFields:      "a, b",
		ClassificationEnabled: true,
		Categories:            "x, y",
	})
	if !got.DataExtractionEnabled || got.ExtractionFields != "a, b" {
		t.Errorf("extraction settings not carried: %+v", got)
	}
	if !got.ClassificationEnabled || got.Categories != "x, y" {
		t.Errorf("classification settings not carried: %+v", got)
	}
}
