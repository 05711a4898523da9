package prompt

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cloudwego/eino/schema"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/config"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/metrics"
)

// Service 提示词应用服务：确定性合成、模型生成与试运行
type Service struct {
	factory  ChatModelFactory
	provider string
	model    string
	sf       singleflight.Group
}

// NewService 创建提示词服务，provider/model 标签取自默认提供商配置
func NewService(factory ChatModelFactory, cfg *config.Config) *Service {
	svc := &Service{
		factory:  factory,
		provider: cfg.LLM.DefaultProvider,
	}
	if pc, ok := cfg.LLM.Providers[cfg.LLM.DefaultProvider]; ok {
		svc.model = pc.Model
	}
	return svc
}

// Compose 确定性合成提示词并记录合成指标
func (s *Service) Compose(goal, contextText string, overrides entity.SettingsOverrides) (string, entity.PromptSettings) {
	settings := AggregateSettings(overrides)
	text := Compose(goal, contextText, settings)
	metrics.PromptComposeTotal.WithLabelValues(settings.OutputFormat).Inc()
	return text, settings
}

// Generate 组装元提示词并调用模型生成最终提示词。
// priorPrompt 非空时走改进路径；同一会话同一时刻至多一次在途调用，
// 并发请求共享同一份结果。只有成功才写入 session.Generated。
func (s *Service) Generate(ctx context.Context, sess *entity.Session, goal, contextText, priorPrompt string, overrides entity.SettingsOverrides) (*entity.GeneratedPrompt, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("goal is required")
	}

	settings := AggregateSettings(overrides)
	effectiveGoal := goal
	if strings.TrimSpace(priorPrompt) != "" {
		effectiveGoal = ImproveGoal(goal, priorPrompt)
	}
	meta := AssembleMeta(effectiveGoal, contextText, settings)

	start := time.Now()
	v, err, _ := s.sf.Do(sess.ID, func() (any, error) {
		return s.invoke(ctx, SystemInstruction, meta)
	})
	if err != nil {
		metrics.PromptGenerationTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "prompt generation failed", err, "session_id", sess.ID)
		return nil, err
	}
	metrics.PromptGenerationTotal.WithLabelValues("success").Inc()
	metrics.PromptGenerationDuration.WithLabelValues(s.provider).Observe(time.Since(start).Seconds())

	generated := &entity.GeneratedPrompt{
		Text:         v.(string),
		SourceFormat: settings.OutputFormat,
	}
	sess.Generated = generated
	return generated, nil
}

// Test 用已生成的提示词充当系统指令，对样例输入试运行一次
func (s *Service) Test(ctx context.Context, promptText, sampleInput string) (string, error) {
	if strings.TrimSpace(promptText) == "" {
		return "", apperrors.ErrInvalidParam.WithDetail("prompt text is required")
	}
	if strings.TrimSpace(sampleInput) == "" {
		return "", apperrors.ErrInvalidParam.WithDetail("sample input is required")
	}
	return s.invoke(ctx, promptText, sampleInput)
}

func (s *Service) invoke(ctx context.Context, systemText, userText string) (string, error) {
	chatModel, err := s.factory.Get(ctx, "")
	if err != nil {
		return "", apperrors.ErrLLMNotConfigured.WithError(err)
	}

	start := time.Now()
	out, err := chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemText),
		schema.UserMessage(userText),
	})
	metrics.LLMCallDuration.WithLabelValues(s.provider, s.model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(s.provider, s.model, "error").Inc()
		return "", apperrors.ErrGenerationFailed.WithError(err)
	}
	metrics.LLMCallTotal.WithLabelValues(s.provider, s.model, "success").Inc()

	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", apperrors.ErrGenerationFailed.WithDetail("empty model response")
	}
	return strings.TrimSpace(out.Content), nil
}
