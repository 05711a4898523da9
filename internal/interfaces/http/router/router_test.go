package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"

	appcontent "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/content"
	appfeedback "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/feedback"
	appprompt "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/prompt"
	appsession "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/session"
	apptemplate "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/template"
	appworkspace "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/workspace"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/config"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/infrastructure/persistence/memory"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/handler"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/utils"
)

type stubChatModel struct {
	reply      string
	lastSystem string
}

func (s *stubChatModel) Generate(_ context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if len(msgs) > 0 {
		s.lastSystem = msgs[0].Content
	}
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

type stubFactory struct{ m model.BaseChatModel }

func (s *stubFactory) Get(_ context.Context, _ string) (model.BaseChatModel, error) {
	return s.m, nil
}

type stubSender struct{}

func (stubSender) Send(_ context.Context, _ appfeedback.Message) error { return nil }

func newTestEngine(t *testing.T) *gin.Engine {
	engine, _ := newTestEngineWithModel(t)
	return engine
}

func newTestEngineWithModel(t *testing.T) (*gin.Engine, *stubChatModel) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.LLM.DefaultProvider = "stub"
	cfg.LLM.Providers = map[string]config.ProviderConfig{"stub": {Model: "stub-model"}}

	sessions := appsession.NewService(
		memory.NewSessionRepo(time.Hour),
		utils.NewJWTManager("test-secret", "test-issuer"),
		time.Hour,
	)
	chat := &stubChatModel{reply: "generated prompt"}
	prompts := appprompt.NewService(&stubFactory{m: chat}, cfg)

	r := New(cfg)
	r.Register(Handlers{
		Health:     handler.NewHealthHandler(nil),
		Auth:       handler.NewAuthHandler(),
		Navigation: handler.NewNavigationHandler(),
		Template:   handler.NewTemplateHandler(apptemplate.NewCatalog()),
		Content:    handler.NewContentHandler(appcontent.NewCatalog()),
		Studio:     handler.NewStudioHandler(),
		Prompt:     handler.NewPromptHandler(prompts),
		Workspace:  handler.NewWorkspaceHandler(appworkspace.NewService(memory.NewWorkspaceRepo())),
		Feedback:   handler.NewFeedbackHandler(appfeedback.NewService(stubSender{})),
	}, middleware.Session(sessions))

	return r.Engine(), chat
}

func doJSON(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(engine, http.MethodGet, path, "", "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestSessionTokenIssuedOnFirstVisit(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/v1/navigation", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /v1/navigation = %d", w.Code)
	}
	if w.Header().Get(middleware.SessionTokenHeader) == "" {
		t.Error("first visit must issue a session token")
	}
}

func TestPrivateRoutesGatedWhenLoggedOut(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/v1/workspace", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /v1/workspace = %d, want 401", w.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	engine := newTestEngine(t)

	// 空凭据拒绝
	w := doJSON(engine, http.MethodPost, "/v1/auth/login", "", `{"email":"","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty login = %d, want 400", w.Code)
	}

	// 两项齐全即放行
	w = doJSON(engine, http.MethodPost, "/v1/auth/login", "", `{"email":"a@b.c","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200", w.Code)
	}
	token := w.Header().Get(middleware.SessionTokenHeader)
	if token == "" {
		t.Fatal("login response must carry a session token")
	}

	var resp struct {
		Data struct {
			LoggedIn    bool   `json:"logged_in"`
			CurrentPage string `json:"current_page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Data.LoggedIn || resp.Data.CurrentPage != "studio" {
		t.Errorf("login must land on studio logged in: %+v", resp.Data)
	}

	// 登录后私有路由可达
	w = doJSON(engine, http.MethodGet, "/v1/workspace", token, "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /v1/workspace after login = %d, want 200", w.Code)
	}
}

func loginAndGetToken(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/v1/auth/login", "", `{"email":"a@b.c","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d", w.Code)
	}
	token := w.Header().Get(middleware.SessionTokenHeader)
	if token == "" {
		t.Fatal("no session token issued")
	}
	return token
}

func TestComposeEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	token := loginAndGetToken(t, engine)

	body := `{"goal":"Answer FAQ from docs","settings":{"output_format":"JSON"}}`
	w := doJSON(engine, http.MethodPost, "/v1/prompts/compose", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("compose = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Prompt string `json:"prompt"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	want := "Your task: Answer FAQ from docs\n\nProvide your response in JSON format."
	if resp.Data.Prompt != want {
		t.Errorf("prompt = %q, want %q", resp.Data.Prompt, want)
	}
}

func TestGenerateAndWorkspaceRoundTrip(t *testing.T) {
	engine := newTestEngine(t)
	token := loginAndGetToken(t, engine)

	w := doJSON(engine, http.MethodPost, "/v1/prompts/generate", token, `{"goal":"Build a bot"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(engine, http.MethodPost, "/v1/workspace", token, `{"goal":"Build a bot","prompt":"generated prompt"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("save = %d: %s", w.Code, w.Body.String())
	}

	var saved struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("bad save body: %v", err)
	}

	w = doJSON(engine, http.MethodGet, "/v1/workspace", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), saved.Data.ID) {
		t.Error("saved record missing from list")
	}

	w = doJSON(engine, http.MethodDelete, "/v1/workspace/"+saved.Data.ID, token, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete = %d, want 204", w.Code)
	}

	// 不存在的 ID 也是 204
	w = doJSON(engine, http.MethodDelete, "/v1/workspace/no-such-id", token, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete missing id = %d, want 204", w.Code)
	}
}

func TestTestRunFallsBackToSessionPrompt(t *testing.T) {
	engine, chat := newTestEngineWithModel(t)
	token := loginAndGetToken(t, engine)

	// 会话里还没有生成结果，不传 prompt 应当报参数错误
	w := doJSON(engine, http.MethodPost, "/v1/prompts/test", token, `{"sample_input":"hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("test before generate = %d, want 400: %s", w.Code, w.Body.String())
	}

	w = doJSON(engine, http.MethodPost, "/v1/prompts/generate", token, `{"goal":"Build a bot"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", w.Code, w.Body.String())
	}

	// 省略 prompt 时使用会话里刚生成的那条
	w = doJSON(engine, http.MethodPost, "/v1/prompts/test", token, `{"sample_input":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("test after generate = %d: %s", w.Code, w.Body.String())
	}
	if chat.lastSystem != "generated prompt" {
		t.Errorf("test run system prompt = %q, want the session's generated prompt", chat.lastSystem)
	}

	var resp struct {
		Data struct {
			SourceFormat string `json:"source_format"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.SourceFormat != "PlainText" {
		t.Errorf("source_format = %q, want the generated prompt's format", resp.Data.SourceFormat)
	}

	// 显式传入的提示词优先于会话槽位
	w = doJSON(engine, http.MethodPost, "/v1/prompts/test", token, `{"prompt":"explicit prompt","sample_input":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("test with explicit prompt = %d: %s", w.Code, w.Body.String())
	}
	if chat.lastSystem != "explicit prompt" {
		t.Errorf("test run system prompt = %q, want the explicit prompt", chat.lastSystem)
	}
}

func TestBlogEndpointsArePublic(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/v1/blog", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /v1/blog = %d", w.Code)
	}

	w = doJSON(engine, http.MethodGet, "/v1/blog/chatbot-personality-design", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /v1/blog/:id = %d", w.Code)
	}

	w = doJSON(engine, http.MethodGet, "/v1/blog/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("GET missing post = %d, want 404", w.Code)
	}
}

func TestDeepLinkRedirectsToLogin(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/v1/navigation?page=studio", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("navigation = %d", w.Code)
	}
	var resp struct {
		Data struct {
			CurrentPage string `json:"current_page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.CurrentPage != "login" {
		t.Errorf("current_page = %q, want login redirect", resp.Data.CurrentPage)
	}
}

func TestTemplateApply(t *testing.T) {
	engine := newTestEngine(t)
	token := loginAndGetToken(t, engine)

	w := doJSON(engine, http.MethodPost, "/v1/templates/apply", token, `{"name":"JSON Data Extractor"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("apply = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(engine, http.MethodGet, "/v1/studio/draft", token, "")
	if !strings.Contains(w.Body.String(), "Extract specific data points") {
		t.Error("template goal must land in the studio draft")
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/v1/feedback", "", `{"name":"A","email":"a@b.c","type":"Question","message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("feedback = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(engine, http.MethodPost, "/v1/feedback", "", `{"name":"","email":"a@b.c","type":"Question","message":"hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid feedback = %d, want 400", w.Code)
	}
}
