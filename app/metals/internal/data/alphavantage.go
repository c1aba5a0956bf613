package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

// alphaVantageSource Alpha Vantage 日线，需要 API Key；优先使用 ETF 代码
type alphaVantageSource struct {
	pc *priceClient
}

func (s *alphaVantageSource) Name() string { return domain.SourceAlphaVantage }

func (s *alphaVantageSource) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	ticker, ok := domain.ETFTickers[symbol]
	if !ok {
		ticker, ok = domain.FuturesTickers[symbol]
	}
	if !ok {
		return nil, errors.New("No ticker symbol configured")
	}
	if s.pc.alphaKey == "" {
		return nil, errors.New("Alpha Vantage API key not configured")
	}
	s.pc.log.Infof("[Alpha Vantage] Fetching %s (%s)", symbol, ticker)

	if err := s.pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	u := s.pc.alphaBase + "?" + url.Values{
		"function":   {"TIME_SERIES_DAILY"},
		"symbol":     {ticker},
		"apikey":     {s.pc.alphaKey},
		"outputsize": {"compact"},
	}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.pc.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{code: resp.StatusCode}
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode alpha vantage response: %w", err)
	}
	return parseDaily(symbol, ticker, body)
}

func parseDaily(symbol, ticker string, body map[string]json.RawMessage) (*domain.Quote, error) {
	if raw, ok := body["Error Message"]; ok {
		var msg string
		_ = json.Unmarshal(raw, &msg)
		return nil, errors.New(msg)
	}
	if _, ok := body["Note"]; ok {
		return nil, errors.New("API call frequency limit reached")
	}
	if _, ok := body["Information"]; ok {
		return nil, errors.New("API call frequency limit reached")
	}

	var daily map[string]map[string]string
	if raw, ok := body["Time Series (Daily)"]; ok {
		if err := json.Unmarshal(raw, &daily); err != nil {
			return nil, fmt.Errorf("decode time series: %w", err)
		}
	}
	if len(daily) == 0 {
		return nil, errors.New("No time series data returned")
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) < 2 {
		return nil, errors.New("Insufficient historical data")
	}

	bars := make([]domain.Bar, 0, alphaHistoryDays)
	for _, d := range dates {
		if len(bars) == alphaHistoryDays {
			break
		}
		b, err := dailyBar(d, daily[d])
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	latest, prev := bars[0], bars[1]
	change := latest.Close - prev.Close
	var pct float64
	if prev.Close != 0 {
		pct = change / prev.Close * 100
	}

	// 输出按时间正序
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return &domain.Quote{
		Symbol:    symbol,
		Ticker:    ticker,
		Source:    domain.SourceAlphaVantage,
		Price:     latest.Close,
		Change:    round2(change),
		ChangePct: round2(pct),
		Currency:  "USD",
		Open:      latest.Open,
		High:      latest.High,
		Low:       latest.Low,
		Volume:    latest.Volume,
		Date:      latest.Date,
		History:   bars,
	}, nil
}

func dailyBar(date string, fields map[string]string) (domain.Bar, error) {
	num := func(key string) (float64, error) {
		v, err := strconv.ParseFloat(fields[key], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s on %s: %w", key, date, err)
		}
		return round2(v), nil
	}
	b := domain.Bar{Date: date}
	var err error
	if b.Open, err = num("1. open"); err != nil {
		return b, err
	}
	if b.High, err = num("2. high"); err != nil {
		return b, err
	}
	if b.Low, err = num("3. low"); err != nil {
		return b, err
	}
	if b.Close, err = num("4. close"); err != nil {
		return b, err
	}
	if v, err := strconv.ParseInt(fields["5. volume"], 10, 64); err == nil {
		b.Volume = v
	}
	return b, nil
}
