package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

const (
	defaultYahooBaseURL = "https://query1.finance.yahoo.com"
	defaultAlphaBaseURL = "https://www.alphavantage.co/query"
	browserUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	genericHistoryDays  = 5
	alphaHistoryDays    = 30
)

// priceClient 各价格数据源共用的 HTTP 客户端与限流器
type priceClient struct {
	yahooBase  string
	alphaBase  string
	alphaKey   string
	hc         *http.Client
	limiter    *rate.Limiter
	retries    int
	retryDelay time.Duration
	log        *log.Helper
}

func newPriceClient(c *conf.Price, logger log.Logger) *priceClient {
	pc := &priceClient{
		yahooBase:  defaultYahooBaseURL,
		alphaBase:  defaultAlphaBaseURL,
		hc:         &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(2), 5),
		retries:    3,
		retryDelay: time.Second,
		log:        log.NewHelper(logger),
	}
	if c != nil {
		if c.YahooBaseUrl != "" {
			pc.yahooBase = c.YahooBaseUrl
		}
		if c.AlphaBaseUrl != "" {
			pc.alphaBase = c.AlphaBaseUrl
		}
		pc.alphaKey = c.AlphaVantageKey
		if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
			pc.hc.Timeout = d
		}
		if c.Retries > 0 {
			pc.retries = int(c.Retries)
		}
		if c.Rpm > 0 && c.Qps > 0 {
			pc.limiter = rate.NewLimiter(rate.Limit(float64(c.Rpm)/60.0), int(c.Qps))
		}
	}
	if pc.alphaKey == "" {
		pc.alphaKey = os.Getenv("ALPHA_VANTAGE_API_KEY")
	}
	return pc
}

// NewPriceSources 按优先级返回全部价格数据源：期货、Alpha Vantage、ETF、矿业股
func NewPriceSources(c *conf.Price, logger log.Logger) []repo.PriceSource {
	pc := newPriceClient(c, logger)
	return []repo.PriceSource{
		&futuresSource{pc: pc},
		&alphaVantageSource{pc: pc},
		&genericSource{pc: pc, name: domain.SourceETF, label: "Metal ETF", tickers: domain.ETFTickers, missing: "No ETF ticker symbol configured"},
		&genericSource{pc: pc, name: domain.SourceStock, label: "Mining Stock", tickers: domain.StockTickers, missing: "No stock ticker symbol configured"},
	}
}

type chartResponse struct {
	Chart struct {
		Result []*chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// series 对齐后的日线序列，缺失值为 nil
type series struct {
	currency  string
	ts        []int64
	open      []*float64
	high      []*float64
	low       []*float64
	close     []*float64
	volume    []*float64
	validIdxs []int
}

func (s *series) date(i int) string {
	return time.Unix(s.ts[i], 0).UTC().Format(time.DateOnly)
}

func at(vs []*float64, i int) (float64, bool) {
	if i >= len(vs) || vs[i] == nil {
		return 0, false
	}
	return *vs[i], true
}

// or 取 vs[i]，缺失时取 fallback
func or(vs []*float64, i int, fallback float64) float64 {
	if v, ok := at(vs, i); ok && v != 0 {
		return v
	}
	return fallback
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// httpStatusError 非 200 响应
type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.code)
}

// fetchChart 请求 Yahoo chart 接口，返回 1 个月的日线
func (pc *priceClient) fetchChart(ctx context.Context, ticker string) (*chartResponse, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", pc.yahooBase, url.PathEscape(ticker), url.Values{
		"range":    {"1mo"},
		"interval": {"1d"},
	}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := pc.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{code: resp.StatusCode}
	}

	var out chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}
	return &out, nil
}

// parseChart 校验并展开 chart 响应；errNoData/errMissing 用于区分不同数据源的措辞
func parseChart(out *chartResponse, errNoData, errMissing string) (*series, error) {
	if e := out.Chart.Error; e != nil {
		desc := e.Description
		if desc == "" {
			desc = "API error"
		}
		return nil, errors.New(desc)
	}
	if len(out.Chart.Result) == 0 || out.Chart.Result[0] == nil {
		return nil, errors.New(errNoData)
	}
	r := out.Chart.Result[0]
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 || len(r.Indicators.Quote[0].Close) == 0 {
		return nil, errors.New(errMissing)
	}
	q := r.Indicators.Quote[0]
	s := &series{
		currency: r.Meta.Currency,
		ts:       r.Timestamp,
		open:     q.Open,
		high:     q.High,
		low:      q.Low,
		close:    q.Close,
		volume:   q.Volume,
	}
	if s.currency == "" {
		s.currency = "USD"
	}
	for i := range s.close {
		if i < len(s.ts) && s.close[i] != nil {
			s.validIdxs = append(s.validIdxs, i)
		}
	}
	return s, nil
}

// quoteFrom 以最后一个有效收盘价为现价，前一个有效收盘价为昨收
func quoteFrom(symbol, ticker, source string, s *series, last, prev int) *domain.Quote {
	price := *s.close[last]
	prevPrice := *s.close[prev]
	change := price - prevPrice
	var pct float64
	if prevPrice != 0 {
		pct = change / prevPrice * 100
	}
	vol, _ := at(s.volume, last)
	return &domain.Quote{
		Symbol:    symbol,
		Ticker:    ticker,
		Source:    source,
		Price:     round2(price),
		Change:    round2(change),
		ChangePct: round2(pct),
		Currency:  s.currency,
		Open:      round2(or(s.open, last, price)),
		High:      round2(or(s.high, last, price)),
		Low:       round2(or(s.low, last, price)),
		Volume:    int64(vol),
		Date:      s.date(last),
	}
}

// futuresSource Yahoo Finance 期货行情，失败重试
type futuresSource struct {
	pc *priceClient
}

func (s *futuresSource) Name() string { return domain.SourceYahoo }

func (s *futuresSource) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	ticker, ok := domain.FuturesTickers[symbol]
	if !ok {
		return nil, errors.New("No ticker symbol configured")
	}
	s.pc.log.Infof("[Yahoo Finance] Fetching %s (%s)", symbol, ticker)

	var lastErr error
	for attempt := 1; attempt <= s.pc.retries; attempt++ {
		q, err := s.fetch(ctx, symbol, ticker)
		if err == nil {
			return q, nil
		}
		lastErr = err
		if attempt < s.pc.retries {
			s.pc.log.Warnf("[Yahoo Finance] Attempt %d failed for %s: %v, retrying...", attempt, symbol, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.pc.retryDelay):
			}
		}
	}
	return nil, fmt.Errorf("Network error after %d attempts: %w", s.pc.retries, lastErr)
}

func (s *futuresSource) fetch(ctx context.Context, symbol, ticker string) (*domain.Quote, error) {
	out, err := s.pc.fetchChart(ctx, ticker)
	if err != nil {
		return nil, err
	}
	sr, err := parseChart(out, "No data returned from API", "Missing required data fields")
	if err != nil {
		return nil, err
	}
	n := len(sr.validIdxs)
	if n < 1 {
		return nil, errors.New("No valid price data available")
	}
	last := sr.validIdxs[n-1]
	prev := last
	if n > 1 {
		prev = sr.validIdxs[n-2]
	}

	q := quoteFrom(symbol, ticker, domain.SourceYahoo, sr, last, prev)
	q.History = make([]domain.Bar, 0, n)
	for _, i := range sr.validIdxs {
		o, _ := at(sr.open, i)
		h, _ := at(sr.high, i)
		l, _ := at(sr.low, i)
		v, _ := at(sr.volume, i)
		q.History = append(q.History, domain.Bar{
			Date:   sr.date(i),
			Open:   round2(o),
			High:   round2(h),
			Low:    round2(l),
			Close:  round2(*sr.close[i]),
			Volume: int64(v),
		})
	}
	return q, nil
}

// genericSource ETF 与矿业股共用的 Yahoo 行情，不重试，只保留最近 5 个交易日
type genericSource struct {
	pc      *priceClient
	name    string
	label   string
	tickers map[string]string
	missing string
}

func (s *genericSource) Name() string { return s.name }

func (s *genericSource) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	ticker, ok := s.tickers[symbol]
	if !ok {
		return nil, errors.New(s.missing)
	}
	s.pc.log.Infof("[%s] Fetching %s (%s)", s.label, symbol, ticker)

	out, err := s.pc.fetchChart(ctx, ticker)
	if err != nil {
		return nil, err
	}
	sr, err := parseChart(out, "No data returned", "Missing data fields")
	if err != nil {
		return nil, err
	}
	n := len(sr.validIdxs)
	if n < 2 {
		return nil, errors.New("Insufficient data points")
	}
	last, prev := sr.validIdxs[n-1], sr.validIdxs[n-2]
	q := quoteFrom(symbol, ticker, s.name, sr, last, prev)
	price := *sr.close[last]

	from := n - genericHistoryDays
	if from < 0 {
		from = 0
	}
	for _, i := range sr.validIdxs[from:] {
		v, _ := at(sr.volume, i)
		q.History = append(q.History, domain.Bar{
			Date:   sr.date(i),
			Open:   round2(or(sr.open, i, price)),
			High:   round2(or(sr.high, i, price)),
			Low:    round2(or(sr.low, i, price)),
			Close:  round2(*sr.close[i]),
			Volume: int64(v),
		})
	}
	return q, nil
}
