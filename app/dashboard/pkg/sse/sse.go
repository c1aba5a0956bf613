// Package sse 处理 `data: ` 前缀的行式流：字节块分帧、逐行分类、消费与写出。
package sse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const (
	dataPrefix = "data: "
	doneMarker = "[DONE]"
)

// Kind 事件类型
type Kind int

const (
	Ignore Kind = iota
	Content
	Error
	Done
)

func (k Kind) String() string {
	switch k {
	case Content:
		return "content"
	case Error:
		return "error"
	case Done:
		return "done"
	default:
		return "ignore"
	}
}

// Event 一行解析出的事件
type Event struct {
	Kind Kind
	Data string
}

// Handler 事件回调，Done 不会传给 Handler
type Handler func(Event)

// Framer 增量分帧器，把任意切分的字节块还原成完整的行
type Framer struct {
	buf []byte
}

// Feed 追加一个字节块，返回其中已完整的行（不含换行符），不完整的尾部留到下次
func (f *Framer) Feed(chunk []byte) []string {
	f.buf = append(f.buf, chunk...)
	var lines []string
	for {
		i := bytes.IndexByte(f.buf, '\n')
		if i < 0 {
			break
		}
		line := f.buf[:i]
		line = bytes.TrimSuffix(line, []byte{'\r'})
		lines = append(lines, string(line))
		f.buf = f.buf[i+1:]
	}
	if len(f.buf) == 0 {
		f.buf = nil
	}
	return lines
}

// Flush 返回流结束时残留的未换行尾部
func (f *Framer) Flush() (string, bool) {
	if len(f.buf) == 0 {
		return "", false
	}
	line := string(bytes.TrimSuffix(f.buf, []byte{'\r'}))
	f.buf = nil
	return line, true
}

type payload struct {
	Content *string `json:"content"`
	Error   *string `json:"error"`
}

// Classify 对一行分类；同时带 content 和 error 的对象按先 content 后 error 产出两个事件
func Classify(line string) []Event {
	if !strings.HasPrefix(line, dataPrefix) {
		return []Event{{Kind: Ignore}}
	}
	data := strings.TrimSpace(line[len(dataPrefix):])
	if data == doneMarker {
		return []Event{{Kind: Done}}
	}

	var p payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return []Event{{Kind: Ignore, Data: data}}
	}

	var events []Event
	if p.Content != nil && *p.Content != "" {
		events = append(events, Event{Kind: Content, Data: *p.Content})
	}
	if p.Error != nil && *p.Error != "" {
		events = append(events, Event{Kind: Error, Data: *p.Error})
	}
	if len(events) == 0 {
		return []Event{{Kind: Ignore, Data: data}}
	}
	return events
}

// Consume 从 r 读取流并分发事件，遇到 [DONE] 或 EOF 正常返回；解析失败的行直接丢弃，读错误原样返回
func Consume(ctx context.Context, r io.Reader, h Handler) error {
	var framer Framer
	buf := make([]byte, 4096)

	dispatch := func(line string) bool {
		for _, ev := range Classify(line) {
			switch ev.Kind {
			case Done:
				return true
			case Content, Error:
				h(ev)
			}
		}
		return false
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		if n > 0 {
			for _, line := range framer.Feed(buf[:n]) {
				if dispatch(line) {
					return nil
				}
			}
		}
		if errors.Is(err, io.EOF) {
			if line, ok := framer.Flush(); ok {
				dispatch(line)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Result Collect 的汇总结果
type Result struct {
	Text   string
	Errors []string
}

// Collect 消费整条流并拼接全部 content
func Collect(ctx context.Context, r io.Reader) (*Result, error) {
	var sb strings.Builder
	res := &Result{}
	err := Consume(ctx, r, func(ev Event) {
		switch ev.Kind {
		case Content:
			sb.WriteString(ev.Data)
		case Error:
			res.Errors = append(res.Errors, ev.Data)
		}
	})
	res.Text = sb.String()
	return res, err
}
