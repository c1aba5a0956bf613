package domain

import (
	"fmt"
	"strings"
)

// 价格数据源名称，按尝试顺序排列
const (
	SourceYahoo        = "yahoo_finance"
	SourceAlphaVantage = "alpha_vantage"
	SourceETF          = "metal_etf"
	SourceStock        = "mining_stock"
	SourceAll          = "all_sources"
)

// FuturesTickers Yahoo Finance 期货代码
var FuturesTickers = map[string]string{
	"Au": "GC=F",
	"Ag": "SI=F",
	"Cu": "HG=F",
	"Pt": "PL=F",
	"Pd": "PA=F",
	"Al": "ALI=F",
}

// ETFTickers 金属 ETF 代码
var ETFTickers = map[string]string{
	"Au": "GLD",
	"Ag": "SLV",
	"Cu": "CPER",
	"Pt": "PPLT",
	"Pd": "PALL",
	"Al": "JJUB",
}

// StockTickers 矿业公司股票代码
var StockTickers = map[string]string{
	"Au": "NEM",
	"Ag": "SLW",
	"Cu": "FCX",
	"Pt": "SIBN.L",
	"Pd": "SIBN.L",
	"Al": "ACH",
}

// PricedMetals 有行情代码的金属，顺序固定
var PricedMetals = []string{"Au", "Ag", "Cu", "Pt", "Pd", "Al"}

// Bar 日线
type Bar struct {
	Date   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Quote 一次成功的报价
type Quote struct {
	Symbol    string
	Ticker    string
	Source    string
	Price     float64
	Change    float64
	ChangePct float64
	Currency  string
	Open      float64
	High      float64
	Low       float64
	Volume    int64
	Date      string
	History   []Bar
}

// SourceError 单个数据源的失败原因
type SourceError struct {
	Source  string
	Message string
}

// PriceResult 价格查询结果；Quote 为空时 Message 说明原因
type PriceResult struct {
	Symbol  string
	Source  string
	Quote   *Quote
	Message string
}

// Available 是否拿到报价
func (r *PriceResult) Available() bool {
	return r.Quote != nil
}

// AllSourcesFailed 汇总所有数据源的失败原因
func AllSourcesFailed(symbol string, errs []SourceError) *PriceResult {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Source, e.Message))
	}
	return &PriceResult{
		Symbol: symbol,
		Source: SourceAll,
		Message: fmt.Sprintf("All data sources failed:\n%s\n\nAvailable metals: %s",
			strings.Join(lines, "\n"), strings.Join(PricedMetals, ", ")),
	}
}
