package usecase

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

const (
	systemPromptZH = "你是一位资深有色金属行业分析师，拥有丰富的矿业、冶炼、贸易政策和市场分析经验。" +
		"请用专业、简练的语言回答问题。输出使用 Markdown 格式。"

	systemPromptEN = "You are a senior non-ferrous metals industry analyst with deep expertise in mining, " +
		"smelting, trade policies, and market analysis. Respond professionally and concisely. " +
		"Use Markdown formatting."

	maxSummaryArticles = 10
)

func systemPrompt(lang string) string {
	if lang == "zh" {
		return systemPromptZH
	}
	return systemPromptEN
}

func summarizePrompt(metal, lang string, articles []domain.Article) string {
	if len(articles) > maxSummaryArticles {
		articles = articles[:maxSummaryArticles]
	}
	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		parts = append(parts, fmt.Sprintf("**%s**\n%s", a.Title, a.Body))
	}
	text := strings.Join(parts, "\n\n")

	if lang == "zh" {
		return fmt.Sprintf("以下是关于 **%s** 的最新资讯，请提取核心要点并生成一份专业摘要，"+
			"涵盖价格走势、供需动态、政策变化和行业影响。\n\n%s", metal, text)
	}
	return fmt.Sprintf("Below are the latest articles about **%s**. Extract key points and generate "+
		"a professional summary covering price trends, supply-demand dynamics, policy changes, "+
		"and industry impact.\n\n%s", metal, text)
}

func analyzePrompt(in domain.AnalyzeInput) string {
	var sb strings.Builder
	if in.Lang == "zh" {
		fmt.Fprintf(&sb, "请对 **%s（%s）** 进行全面的专业市场分析。\n\n", in.MetalZH, in.Metal)
		fmt.Fprintf(&sb, "## 当前价格信息\n%s\n\n", in.PriceInfo)
		fmt.Fprintf(&sb, "## 近期资讯摘要\n%s\n\n", in.NewsSnippets)
		sb.WriteString("请从以下角度展开分析：\n")
		sb.WriteString("1. **市场概况与价格走势**\n")
		sb.WriteString("2. **供给侧分析**（矿山产能、冶炼产能、库存变化）\n")
		sb.WriteString("3. **需求侧分析**（下游行业、新兴应用、替代风险）\n")
		sb.WriteString("4. **政策与贸易环境**（关税、出口管制、环保法规）\n")
		sb.WriteString("5. **风险因素与关注要点**\n")
		sb.WriteString("6. **短期展望**\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Provide a comprehensive professional market analysis for **%s**.\n\n", in.Metal)
	fmt.Fprintf(&sb, "## Current Price Info\n%s\n\n", in.PriceInfo)
	fmt.Fprintf(&sb, "## Recent News Summary\n%s\n\n", in.NewsSnippets)
	sb.WriteString("Analyze from the following perspectives:\n")
	sb.WriteString("1. **Market Overview & Price Trend**\n")
	sb.WriteString("2. **Supply Side** (mine capacity, smelter capacity, inventory)\n")
	sb.WriteString("3. **Demand Side** (downstream industries, emerging applications, substitution risk)\n")
	sb.WriteString("4. **Policy & Trade Environment** (tariffs, export controls, environmental regulations)\n")
	sb.WriteString("5. **Risk Factors & Key Watchpoints**\n")
	sb.WriteString("6. **Short-Term Outlook**\n")
	return sb.String()
}

func chatSystemPrompt(in domain.ChatInput) string {
	p := systemPrompt(in.Lang)
	if in.Metal != "" {
		if in.Lang == "zh" {
			p += fmt.Sprintf("\n\n当前用户正在查看 **%s（%s）** 的信息面板。", in.MetalZH, in.Metal)
		} else {
			p += fmt.Sprintf("\n\nThe user is currently viewing the info panel for **%s**.", in.Metal)
		}
	}
	if in.Context != "" {
		p += "\n\nContext data:\n" + in.Context
	}
	return p
}
