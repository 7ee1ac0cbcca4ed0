package service

import "sync"

// NoticeType: jenis notifikasi user-facing (modal alert di client).
type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeWarning NoticeType = "warning"
)

type Notice struct {
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
}

// Notifier menerima notifikasi dari workflow. Di HTTP layer dipetakan ke
// response envelope; di test cukup dikumpulkan.
type Notifier interface {
	Notify(n Notice)
}

// NoticeCollector: Notifier yang menampung notice berurutan.
type NoticeCollector struct {
	mu      sync.Mutex
	notices []Notice
}

func (c *NoticeCollector) Notify(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

func (c *NoticeCollector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Last: notice terakhir (ok=false kalau kosong).
func (c *NoticeCollector) Last() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.notices) == 0 {
		return Notice{}, false
	}
	return c.notices[len(c.notices)-1], true
}
