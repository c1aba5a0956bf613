package service

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	kerrors "github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

func writeJSON(w nethttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// beginStream 校验方法与 LLM 设置，成功后解码请求体；失败时已写出 JSON 错误
func (s *MetalsService) beginStream(w nethttp.ResponseWriter, r *nethttp.Request, body any) (*domain.Settings, bool) {
	if r.Method != nethttp.MethodPost {
		w.Header().Set("Allow", nethttp.MethodPost)
		writeJSON(w, nethttp.StatusMethodNotAllowed, v1.ErrorReply{Error: "method not allowed"})
		return nil, false
	}
	st, err := s.ai.Ready(r.Context())
	if err != nil {
		code := nethttp.StatusInternalServerError
		if e := new(kerrors.Error); kerrors.As(err, &e) {
			code = int(e.Code)
			err = errors.New(e.Message)
		}
		writeJSON(w, code, v1.ErrorReply{Error: err.Error()})
		return nil, false
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(body); err != nil {
			writeJSON(w, nethttp.StatusBadRequest, v1.ErrorReply{Error: "invalid request: " + err.Error()})
			return nil, false
		}
	}
	return st, true
}

// streamTo 把增量写成 {"content"} 事件，正常结束写 [DONE]，出错写 {"error"}
func (s *MetalsService) streamTo(w nethttp.ResponseWriter, run func(onDelta func(string) error) error) {
	sw := sse.NewWriter(w)
	if err := run(sw.WriteContent); err != nil {
		if werr := sw.WriteError(err.Error()); werr != nil {
			s.log.Debugf("write stream error: %v", werr)
		}
		return
	}
	if err := sw.WriteDone(); err != nil {
		s.log.Debugf("write stream done: %v", err)
	}
}

// Analyze POST /api/ai/analyze
func (s *MetalsService) Analyze(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req v1.AnalyzeRequest
	st, ok := s.beginStream(w, r, &req)
	if !ok {
		return
	}
	in := domain.AnalyzeInput{
		Metal:        req.Metal,
		MetalZH:      req.MetalZH,
		PriceInfo:    req.PriceInfo,
		NewsSnippets: req.NewsSnippets,
		Lang:         req.Lang,
	}
	s.streamTo(w, func(onDelta func(string) error) error {
		return s.ai.Analyze(r.Context(), st, in, onDelta)
	})
}

// Chat POST /api/ai/chat
func (s *MetalsService) Chat(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req v1.ChatRequest
	st, ok := s.beginStream(w, r, &req)
	if !ok {
		return
	}
	in := domain.ChatInput{
		Messages: fromChatMessages(req.Messages),
		Metal:    req.Metal,
		MetalZH:  req.MetalZH,
		Context:  req.Context,
		Lang:     req.Lang,
	}
	s.streamTo(w, func(onDelta func(string) error) error {
		return s.ai.Chat(r.Context(), st, in, onDelta)
	})
}

