package feedback

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func validMessage() Message {
	return Message{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Type:    "Bug Report",
		Content: "The compose button is broken.",
	}
}

func TestSubmitDelivers(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender)

	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sender called %d times, want 1", len(sender.sent))
	}
}

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Message)
	}{
		{"missing name", func(m *Message) { m.Name = "" }},
		{"missing email", func(m *Message) { m.Email = "  " }},
		{"missing type", func(m *Message) { m.Type = "" }},
		{"missing message", func(m *Message) { m.Content = "" }},
		{"email without at sign", func(m *Message) { m.Email = "not-an-email" }},
		{"unknown type", func(m *Message) { m.Type = "Rant" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewService(sender)

			msg := validMessage()
			tc.mutate(&msg)

			err := svc.Submit(context.Background(), msg)
			if err == nil {
				t.Fatal("Submit() expected validation error")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidationFailed {
				t.Errorf("Code = %v, want %v", appErr.Code, apperrors.CodeValidationFailed)
			}
			if len(sender.sent) != 0 {
				t.Error("sender must not be called on validation failure")
			}
		})
	}
}

func TestSubmitDeliveryFailure(t *testing.T) {
	svc := NewService(&fakeSender{err: errors.New("smtp down")})

	err := svc.Submit(context.Background(), validMessage())
	if err == nil {
		t.Fatal("Submit() expected delivery error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeFeedbackFailed {
		t.Errorf("Code = %v, want %v", appErr.Code, apperrors.CodeFeedbackFailed)
	}
}

func TestSubmitAllFeedbackTypes(t *testing.T) {
	for _, ft := range []string{"Bug Report", "Feature Request", "General Feedback", "Question"} {
		msg := validMessage()
		msg.Type = ft
		if err := NewService(&fakeSender{}).Submit(context.Background(), msg); err != nil {
			t.Errorf("Submit(%q) error = %v", ft, err)
		}
	}
}
