// Package eino 提供 Eino 调用链的全局观测回调
package eino

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"
)

// startTimeKey 用于在 Context 中存储调用开始时间
type startTimeKey struct{}

// newChatModelCallbackHandler 创建模型调用的回调处理器。
// 每次模型生成都会产生一个 llm.generate span，并在结束时
// 把 Token 消耗写进日志。
func newChatModelCallbackHandler() *cbtemplate.ModelCallbackHandler {
	return &cbtemplate.ModelCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *model.CallbackInput) context.Context {
			ctx = context.WithValue(ctx, startTimeKey{}, time.Now())

			attrs := []attribute.KeyValue{
				attribute.String("llm.model", modelNameFromInput(input)),
			}
			if info != nil {
				attrs = append(attrs,
					attribute.String("eino.node_name", info.Name),
					attribute.String("eino.type", info.Type),
				)
			}

			ctx, _ = otel.Tracer("eino").Start(ctx, "llm.generate", trace.WithAttributes(attrs...))
			return ctx
		},

		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *model.CallbackOutput) context.Context {
			span := trace.SpanFromContext(ctx)
			if output != nil && output.TokenUsage != nil {
				span.SetAttributes(
					attribute.Int("llm.prompt_tokens", output.TokenUsage.PromptTokens),
					attribute.Int("llm.completion_tokens", output.TokenUsage.CompletionTokens),
				)
				logger.Debug(ctx, "llm call finished",
					"model", modelNameFromOutput(output),
					"prompt_tokens", output.TokenUsage.PromptTokens,
					"completion_tokens", output.TokenUsage.CompletionTokens,
					"duration_s", elapsedSeconds(ctx),
				)
			}
			span.End()
			return ctx
		},

		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			return ctx
		},
	}
}

func modelNameFromInput(input *model.CallbackInput) string {
	if input != nil && input.Config != nil {
		return input.Config.Model
	}
	return "unknown"
}

func modelNameFromOutput(output *model.CallbackOutput) string {
	if output != nil && output.Config != nil {
		return output.Config.Model
	}
	return "unknown"
}

func elapsedSeconds(ctx context.Context) float64 {
	if start, ok := ctx.Value(startTimeKey{}).(time.Time); ok {
		return time.Since(start).Seconds()
	}
	return 0
}
