package session

import (
	"context"
	"testing"
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/persistence/memory"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/utils"
)

func newTestService() *Service {
	repo := memory.NewSessionRepo(time.Hour)
	jwt := utils.NewJWTManager("test-secret", "test-issuer")
	return NewService(repo, jwt, time.Hour)
}

func TestResolveWithoutTokenCreatesSession(t *testing.T) {
	svc := newTestService()

	sess, token, err := svc.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if sess == nil || sess.ID == "" {
		t.Fatal("Resolve() must create a session")
	}
	if token == "" {
		t.Error("a new session must come with a fresh token")
	}
	if sess.CurrentPage != entity.PageHome || sess.LoggedIn {
		t.Errorf("new session must start logged out on home: %+v", sess)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, token, err := svc.Resolve(ctx, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	created.Draft.Goal = "persist me"
	if err := svc.Persist(ctx, created); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	found, newToken, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("resolved session ID = %q, want %q", found.ID, created.ID)
	}
	if found.Draft.Goal != "persist me" {
		t.Errorf("Draft.Goal = %q, state must round trip", found.Draft.Goal)
	}
	if newToken != "" {
		t.Error("an existing session must not get a new token")
	}
}

func TestResolveInvalidTokenCreatesFreshSession(t *testing.T) {
	svc := newTestService()

	sess, token, err := svc.Resolve(context.Background(), "garbage.token.value")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if sess == nil || token == "" {
		t.Error("invalid token must fall back to a fresh session with a new token")
	}
}

func TestResolveExpiredStoreEntryCreatesFreshSession(t *testing.T) {
	repo := memory.NewSessionRepo(time.Millisecond)
	jwt := utils.NewJWTManager("test-secret", "test-issuer")
	svc := NewService(repo, jwt, time.Hour)
	ctx := context.Background()

	_, token, err := svc.Resolve(ctx, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	fresh, newToken, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if fresh == nil || newToken == "" {
		t.Error("an evicted session must be replaced with a fresh one")
	}
}
