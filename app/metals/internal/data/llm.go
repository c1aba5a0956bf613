package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

// chatModelFactory 根据当前设置构造模型，测试中替换
type chatModelFactory func(ctx context.Context, s *domain.Settings) (model.BaseChatModel, error)

type llmRepo struct {
	newModel chatModelFactory
	limiter  *rate.Limiter
	log      *log.Helper
}

// NewLLMRepo 每次调用按最新设置创建 OpenAI 兼容模型
func NewLLMRepo(c *conf.LLM, logger log.Logger) repo.LLMRepo {
	limiter := rate.NewLimiter(rate.Limit(1), 3)
	if c != nil && c.Rpm > 0 && c.Qps > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(c.Rpm)/60.0), int(c.Qps))
	}
	return &llmRepo{
		newModel: newOpenAIModel,
		limiter:  limiter,
		log:      log.NewHelper(logger),
	}
}

func newOpenAIModel(ctx context.Context, s *domain.Settings) (model.BaseChatModel, error) {
	temp := float32(s.Temperature)
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     s.BaseURL,
		APIKey:      s.APIKey,
		Model:       s.Model,
		Temperature: &temp,
		Timeout:     5 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return cm, nil
}

func toSchema(msgs []domain.Message) []*schema.Message {
	out := make([]*schema.Message, 0, len(msgs))
	for _, m := range msgs {
		role := schema.User
		switch m.Role {
		case domain.RoleSystem:
			role = schema.System
		case domain.RoleAssistant:
			role = schema.Assistant
		}
		out = append(out, &schema.Message{Role: role, Content: m.Content})
	}
	return out
}

func (r *llmRepo) Generate(ctx context.Context, s *domain.Settings, msgs []domain.Message) (string, error) {
	cm, err := r.newModel(ctx, s)
	if err != nil {
		return "", err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := cm.Generate(ctx, toSchema(msgs))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (r *llmRepo) Stream(ctx context.Context, s *domain.Settings, msgs []domain.Message, onDelta func(string) error) error {
	cm, err := r.newModel(ctx, s)
	if err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	sr, err := cm.Stream(ctx, toSchema(msgs))
	if err != nil {
		return err
	}
	defer sr.Close()

	for {
		chunk, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		if err := onDelta(chunk.Content); err != nil {
			r.log.Debugf("stream consumer stopped: %v", err)
			return err
		}
	}
}
