package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/config"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

type fakeChatModel struct {
	reply   string
	err     error
	lastMsg []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.lastMsg = in
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

type fakeFactory struct {
	chatModel *fakeChatModel
	err       error
}

func (f *fakeFactory) Get(_ context.Context, _ string) (model.BaseChatModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chatModel, nil
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "test",
			Providers: map[string]config.ProviderConfig{
				"test": {Model: "test-model"},
			},
		},
	}
}

func TestGenerateUpdatesSession(t *testing.T) {
	chatModel := &fakeChatModel{reply: "  a generated prompt  "}
	svc := NewService(&fakeFactory{chatModel: chatModel}, testConfig())
	sess := entity.NewSession()

	got, err := svc.Generate(context.Background(), sess, "Build a bot", "", "", entity.SettingsOverrides{OutputFormat: entity.FormatJSON})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Text != "a generated prompt" {
		t.Errorf("Text = %q, want trimmed reply", got.Text)
	}
	if got.SourceFormat != entity.FormatJSON {
		t.Errorf("SourceFormat = %q, want %q", got.SourceFormat, entity.FormatJSON)
	}
	if sess.Generated == nil || sess.Generated.Text != "a generated prompt" {
		t.Errorf("session.Generated not updated: %+v", sess.Generated)
	}
}

func TestGenerateSendsSystemInstruction(t *testing.T) {
	chatModel := &fakeChatModel{reply: "ok"}
	svc := NewService(&fakeFactory{chatModel: chatModel}, testConfig())
	sess := entity.NewSession()

	if _, err := svc.Generate(context.Background(), sess, "Build a bot", "", "", entity.SettingsOverrides{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(chatModel.lastMsg) != 2 {
		t.Fatalf("got %d messages, want 2", len(chatModel.lastMsg))
	}
	if chatModel.lastMsg[0].Role != schema.System || chatModel.lastMsg[0].Content != SystemInstruction {
		t.Errorf("first message must be the fixed system instruction")
	}
	if chatModel.lastMsg[1].Role != schema.User {
		t.Errorf("second message must carry the meta prompt")
	}
}

func TestGenerateImprovePath(t *testing.T) {
	chatModel := &fakeChatModel{reply: "improved"}
	svc := NewService(&fakeFactory{chatModel: chatModel}, testConfig())
	sess := entity.NewSession()

	if _, err := svc.Generate(context.Background(), sess, "Tighten it up", "", "old prompt", entity.SettingsOverrides{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	meta := chatModel.lastMsg[1].Content
	if want := ImproveGoal("Tighten it up", "old prompt"); !strings.Contains(meta, want) {
		t.Errorf("meta prompt missing improve goal %q: %q", want, meta)
	}
}

func TestGenerateFailureLeavesSessionUntouched(t *testing.T) {
	svc := NewService(&fakeFactory{chatModel: &fakeChatModel{err: errors.New("upstream down")}}, testConfig())
	sess := entity.NewSession()
	sess.Generated = &entity.GeneratedPrompt{Text: "previous", SourceFormat: entity.FormatPlainText}

	_, err := svc.Generate(context.Background(), sess, "Build a bot", "", "", entity.SettingsOverrides{})
	if err == nil {
		t.Fatal("Generate() expected error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeGenerationFailed {
		t.Errorf("Code = %v, want %v", appErr.Code, apperrors.CodeGenerationFailed)
	}
	if sess.Generated.Text != "previous" {
		t.Errorf("failed generation must not touch session.Generated: %+v", sess.Generated)
	}
}

func TestGenerateEmptyGoalRejected(t *testing.T) {
	svc := NewService(&fakeFactory{chatModel: &fakeChatModel{reply: "x"}}, testConfig())
	sess := entity.NewSession()

	if _, err := svc.Generate(context.Background(), sess, "   ", "", "", entity.SettingsOverrides{}); err == nil {
		t.Fatal("Generate() expected error for empty goal")
	}
}

func TestGenerateFactoryErrorIsNotConfigured(t *testing.T) {
	svc := NewService(&fakeFactory{err: errors.New("no provider")}, testConfig())
	sess := entity.NewSession()

	_, err := svc.Generate(context.Background(), sess, "Build a bot", "", "", entity.SettingsOverrides{})
	if err == nil {
		t.Fatal("Generate() expected error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeLLMNotConfigured {
		t.Errorf("Code = %v, want %v", appErr.Code, apperrors.CodeLLMNotConfigured)
	}
}

func TestGenerateEmptyReplyRejected(t *testing.T) {
	svc := NewService(&fakeFactory{chatModel: &fakeChatModel{reply: "   "}}, testConfig())
	sess := entity.NewSession()

	if _, err := svc.Generate(context.Background(), sess, "Build a bot", "", "", entity.SettingsOverrides{}); err == nil {
		t.Fatal("Generate() expected error for empty model reply")
	}
}

func TestTestRunUsesPromptAsSystemRole(t *testing.T) {
	chatModel := &fakeChatModel{reply: "classified: bug"}
	svc := NewService(&fakeFactory{chatModel: chatModel}, testConfig())

	out, err := svc.Test(context.Background(), "You classify tickets.", "App crashes on login")
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if out != "classified: bug" {
		t.Errorf("output = %q", out)
	}
	if chatModel.lastMsg[0].Role != schema.System || chatModel.lastMsg[0].Content != "You classify tickets." {
		t.Errorf("generated prompt must be sent as system role")
	}
	if chatModel.lastMsg[1].Content != "App crashes on login" {
		t.Errorf("sample input must be sent as user message")
	}
}

func TestTestRunValidation(t *testing.T) {
	svc := NewService(&fakeFactory{chatModel: &fakeChatModel{reply: "x"}}, testConfig())

	if _, err := svc.Test(context.Background(), "", "input"); err == nil {
		t.Error("Test() expected error for empty prompt")
	}
	if _, err := svc.Test(context.Background(), "prompt", ""); err == nil {
		t.Error("Test() expected error for empty sample input")
	}
}
