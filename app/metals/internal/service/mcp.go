package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/usecase"
)

// MCPService 以 MCP 工具形式暴露行情与资讯
type MCPService struct {
	price *usecase.PriceUseCase
	news  *usecase.NewsUseCase
}

func NewMCPService(price *usecase.PriceUseCase, news *usecase.NewsUseCase) *MCPService {
	return &MCPService{price: price, news: news}
}

// Register 在 /mcp 挂载 Streamable HTTP 端点
func (s *MCPService) Register(srv *http.Server) {
	ms := server.NewMCPServer("Metals", "1.0.0", server.WithToolCapabilities(true))
	ms.AddTools(s.Tools()...)
	srv.Handle("/mcp", server.NewStreamableHTTPServer(ms))
}

type metalInfo struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	NameZH  string `json:"name_zh"`
	Futures string `json:"futures,omitempty"`
	ETF     string `json:"etf,omitempty"`
	Stock   string `json:"stock,omitempty"`
}

type elementInfo struct {
	Number     int      `json:"number"`
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name"`
	NameZH     string   `json:"name_zh"`
	Mass       float64  `json:"mass"`
	Category   string   `json:"category"`
	Tradeable  string   `json:"tradeable,omitempty"`
	Density    float64  `json:"density,omitempty"`
	Melting    float64  `json:"melting_point,omitempty"`
	Boiling    float64  `json:"boiling_point,omitempty"`
	Apps       []string `json:"applications,omitempty"`
	HasTickers bool     `json:"has_price"`
}

// Tools 全部工具
func (s *MCPService) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_metals",
				mcp.WithDescription("List metals that have market price data, with their futures, ETF and mining stock tickers"),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				out := make([]metalInfo, 0, len(domain.PricedMetals))
				for _, sym := range domain.PricedMetals {
					info := metalInfo{
						Symbol:  sym,
						Futures: domain.FuturesTickers[sym],
						ETF:     domain.ETFTickers[sym],
						Stock:   domain.StockTickers[sym],
					}
					if el, ok := element.BySymbol(sym); ok {
						info.Name, info.NameZH = el.NameEN, el.NameZH
					}
					out = append(out, info)
				}
				return jsonToolResult(out)
			},
		},
		{
			Tool: mcp.NewTool("element_info",
				mcp.WithDescription("Look up a chemical element by symbol: identity, non-ferrous category, physical properties and applications"),
				mcp.WithString("symbol", mcp.Required(), mcp.Description("Element symbol, e.g. Cu")),
				mcp.WithString("lang", mcp.Description("Language for applications: en or zh")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sym, err := req.RequireString("symbol")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				el, ok := element.BySymbol(sym)
				if !ok {
					return mcp.NewToolResultError(fmt.Sprintf("unknown element: %s", sym)), nil
				}
				info := elementInfo{
					Number:    el.Number,
					Symbol:    el.Symbol,
					Name:      el.NameEN,
					NameZH:    el.NameZH,
					Mass:      el.Mass,
					Category:  string(el.Category),
					Tradeable: string(el.Tradeable),
				}
				_, info.HasTickers = domain.FuturesTickers[el.Symbol]
				if p, ok := element.PropertiesOf(el.Symbol); ok {
					info.Density, info.Melting, info.Boiling = p.Density, p.Melting, p.Boiling
					info.Apps = p.Apps(req.GetString("lang", "en"))
				}
				return jsonToolResult(info)
			},
		},
		{
			Tool: mcp.NewTool("get_price",
				mcp.WithDescription("Get the latest price and daily history for a metal, trying futures, Alpha Vantage, ETF and mining stock sources in order"),
				mcp.WithString("symbol", mcp.Required(), mcp.Description("Element symbol, e.g. Au")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sym, err := req.RequireString("symbol")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				r := s.price.Get(ctx, sym)
				if !r.Available() {
					return mcp.NewToolResultError(r.Message), nil
				}
				return jsonToolResult(toPriceReply(r))
			},
		},
		{
			Tool: mcp.NewTool("get_news",
				mcp.WithDescription("Search recent news about a metal"),
				mcp.WithString("symbol", mcp.Required(), mcp.Description("Element symbol, e.g. Cu")),
				mcp.WithString("category", mcp.Description("news, mining, policy, price, industry or supply")),
				mcp.WithString("lang", mcp.Description("en or zh")),
				mcp.WithString("name", mcp.Description("Metal name used in the query, defaults to the English element name")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sym, err := req.RequireString("symbol")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				name := req.GetString("name", "")
				if name == "" {
					if el, ok := element.BySymbol(sym); ok {
						name = el.NameEN
					}
				}
				articles := s.news.Search(ctx, domain.NewsQuery{
					Symbol:   sym,
					Category: req.GetString("category", ""),
					Lang:     req.GetString("lang", ""),
					Name:     name,
				})
				return jsonToolResult(toArticles(articles))
			},
		},
	}
}

func jsonToolResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
