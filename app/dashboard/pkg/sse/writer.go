package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Writer 服务端事件流写出器，每次写入后立即 flush
type Writer struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// NewWriter 写出事件流响应头并返回 Writer
func NewWriter(w http.ResponseWriter) *Writer {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	return &Writer{w: w, rc: http.NewResponseController(w)}
}

// WriteContent 写一条 {"content": ...}
func (sw *Writer) WriteContent(s string) error {
	return sw.writeJSON(map[string]string{"content": s})
}

// WriteError 写一条 {"error": ...}
func (sw *Writer) WriteError(msg string) error {
	return sw.writeJSON(map[string]string{"error": msg})
}

// WriteDone 写结束标记
func (sw *Writer) WriteDone() error {
	return sw.writeData(doneMarker)
}

// WriteEvent 写一条具名事件，多行数据逐行加 data: 前缀
func (sw *Writer) WriteEvent(name, data string) error {
	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "event: %s\n", name)
	}
	for _, line := range strings.Split(data, "\n") {
		sb.WriteString(dataPrefix)
		sb.WriteString(strings.TrimSuffix(line, "\r"))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(sw.w, sb.String()); err != nil {
		return err
	}
	return sw.flush()
}

func (sw *Writer) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return sw.writeData(string(b))
}

func (sw *Writer) writeData(data string) error {
	if _, err := fmt.Fprintf(sw.w, "%s%s\n\n", dataPrefix, data); err != nil {
		return err
	}
	return sw.flush()
}

func (sw *Writer) flush() error {
	if err := sw.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}
