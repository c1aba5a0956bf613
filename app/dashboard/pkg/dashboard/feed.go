package dashboard

import (
	"context"
	"sync"
)

// feed 一次后台流式请求的进度，任意数量的订阅者可随时接入或离开
type feed struct {
	mu      sync.Mutex
	version int
	changed chan struct{}
	done    chan struct{}
}

func newFeed() *feed {
	return &feed{changed: make(chan struct{}), done: make(chan struct{})}
}

// signal 会话状态已更新
func (f *feed) signal() {
	f.mu.Lock()
	f.version++
	close(f.changed)
	f.changed = make(chan struct{})
	f.mu.Unlock()
}

func (f *feed) state() (int, <-chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version, f.changed
}

// finish 只能调用一次，须在最终状态写入会话之后
func (f *feed) finish() {
	close(f.done)
}

// follow 每当 f 有新进展就渲染 fragment 交给 onUpdate，直到请求结束；
// ctx 取消只结束本次订阅，请求继续在后台运行
func (c *Controller) follow(ctx context.Context, f *feed, fragment string, onUpdate UpdateFunc) error {
	if f == nil {
		return nil
	}
	seen := 0
	for {
		v, changed := f.state()
		if v > seen {
			seen = v
			c.notify(onUpdate, fragment)
		}
		select {
		case <-changed:
		case <-f.done:
			if v, _ := f.state(); v > seen {
				c.notify(onUpdate, fragment)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
