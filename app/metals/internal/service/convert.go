package service

import (
	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

func toPriceReply(r *domain.PriceResult) *v1.PriceReply {
	if !r.Available() {
		return &v1.PriceReply{
			Symbol:    r.Symbol,
			Available: false,
			Source:    r.Source,
			Message:   r.Message,
		}
	}
	q := r.Quote
	reply := &v1.PriceReply{
		Symbol:    q.Symbol,
		Ticker:    q.Ticker,
		Available: true,
		Source:    r.Source,
		Price:     q.Price,
		Change:    q.Change,
		ChangePct: q.ChangePct,
		Currency:  q.Currency,
		Open:      q.Open,
		High:      q.High,
		Low:       q.Low,
		Volume:    q.Volume,
		Date:      q.Date,
		History:   make([]v1.HistoryPoint, 0, len(q.History)),
	}
	for _, b := range q.History {
		reply.History = append(reply.History, v1.HistoryPoint{
			Date:   b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return reply
}

func toArticles(in []domain.Article) []v1.Article {
	out := make([]v1.Article, 0, len(in))
	for _, a := range in {
		out = append(out, v1.Article{
			Title:  a.Title,
			URL:    a.URL,
			Body:   a.Body,
			Source: a.Source,
			Date:   a.Date,
			Image:  a.Image,
		})
	}
	return out
}

func fromArticles(in []v1.Article) []domain.Article {
	out := make([]domain.Article, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Article{
			Title:  a.Title,
			URL:    a.URL,
			Body:   a.Body,
			Source: a.Source,
			Date:   a.Date,
			Image:  a.Image,
		})
	}
	return out
}

func fromChatMessages(in []v1.ChatMessage) []domain.Message {
	out := make([]domain.Message, 0, len(in))
	for _, m := range in {
		out = append(out, domain.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
