package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

var (
	ErrLLMNotConfigured = errors.BadRequest("LLM_NOT_CONFIGURED", "LLM API not configured. Please set your API key in Settings.")
	ErrNoArticles       = errors.BadRequest("NO_ARTICLES", "No articles provided.")
)

// AIUseCase 摘要、分析与对话
type AIUseCase struct {
	settings repo.SettingsRepo
	llm      repo.LLMRepo
	log      *log.Helper
}

func NewAIUseCase(settings repo.SettingsRepo, llm repo.LLMRepo, logger log.Logger) *AIUseCase {
	return &AIUseCase{settings: settings, llm: llm, log: log.NewHelper(logger)}
}

// Ready 返回当前设置；未配置 API Key 时返回 ErrLLMNotConfigured
func (uc *AIUseCase) Ready(ctx context.Context) (*domain.Settings, error) {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !s.Configured() {
		return nil, ErrLLMNotConfigured
	}
	return s, nil
}

// Summarize 对前 10 篇资讯生成摘要
func (uc *AIUseCase) Summarize(ctx context.Context, in domain.SummarizeInput) (string, error) {
	s, err := uc.Ready(ctx)
	if err != nil {
		return "", err
	}
	if len(in.Articles) == 0 {
		return "", ErrNoArticles
	}
	if in.Metal == "" {
		in.Metal = "unknown metal"
	}
	out, err := uc.llm.Generate(ctx, s, []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt(in.Lang)},
		{Role: domain.RoleUser, Content: summarizePrompt(in.Metal, in.Lang, in.Articles)},
	})
	if err != nil {
		uc.log.Errorf("AI summarize error: %v", err)
		return "", err
	}
	return out, nil
}

// AnalyzeMessages 组装分析请求的消息
func AnalyzeMessages(in domain.AnalyzeInput) []domain.Message {
	if in.Metal == "" {
		in.Metal = "unknown metal"
	}
	if in.MetalZH == "" {
		in.MetalZH = in.Metal
	}
	if in.PriceInfo == "" {
		in.PriceInfo = "N/A"
	}
	return []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt(in.Lang)},
		{Role: domain.RoleUser, Content: analyzePrompt(in)},
	}
}

// ChatMessages 系统提示加上完整的历史消息
func ChatMessages(in domain.ChatInput) []domain.Message {
	if in.MetalZH == "" {
		in.MetalZH = in.Metal
	}
	msgs := make([]domain.Message, 0, len(in.Messages)+1)
	msgs = append(msgs, domain.Message{Role: domain.RoleSystem, Content: chatSystemPrompt(in)})
	return append(msgs, in.Messages...)
}

// Analyze 流式生成综合分析
func (uc *AIUseCase) Analyze(ctx context.Context, s *domain.Settings, in domain.AnalyzeInput, onDelta func(string) error) error {
	if err := uc.llm.Stream(ctx, s, AnalyzeMessages(in), onDelta); err != nil {
		uc.log.Errorf("AI analyze stream error: %v", err)
		return err
	}
	return nil
}

// Chat 流式对话
func (uc *AIUseCase) Chat(ctx context.Context, s *domain.Settings, in domain.ChatInput, onDelta func(string) error) error {
	if err := uc.llm.Stream(ctx, s, ChatMessages(in), onDelta); err != nil {
		uc.log.Errorf("AI chat stream error: %v", err)
		return err
	}
	return nil
}
