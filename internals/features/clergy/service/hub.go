package service

import (
	"log"
	"sync"

	clergyModel "aos_backend/internals/features/clergy/model"
)

const subscriberQueueSize = 16

// snapshotMessage: satu pesan ke subscriber — snapshot ATAU error.
type snapshotMessage struct {
	records []clergyModel.ClergyModel
	err     error
}

type hubSubscriber struct {
	ch   chan snapshotMessage
	done chan struct{}
}

// snapshotHub: pub/sub in-process untuk snapshot roster. Satu goroutine
// per subscriber, delivery berurutan per subscriber.
type snapshotHub struct {
	mu        sync.Mutex
	subs      map[int]*hubSubscriber
	lastSubID int
}

func newSnapshotHub() *snapshotHub {
	return &snapshotHub{subs: make(map[int]*hubSubscriber)}
}

// subscribe mendaftarkan callback; initial (kalau ada) dikirim duluan hanya
// ke subscriber baru ini.
func (h *snapshotHub) subscribe(
	onSnapshot func([]clergyModel.ClergyModel),
	onError func(error),
	initial *snapshotMessage,
) Unsubscribe {
	sub := &hubSubscriber{
		ch:   make(chan snapshotMessage, subscriberQueueSize),
		done: make(chan struct{}),
	}
	if initial != nil {
		sub.ch <- *initial
	}

	h.mu.Lock()
	h.lastSubID++
	id := h.lastSubID
	h.subs[id] = sub
	h.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case msg, ok := <-sub.ch:
				if !ok {
					return
				}
				// cek ulang: unsubscribe bisa datang saat pesan masih antre
				select {
				case <-sub.done:
					return
				default:
				}
				if msg.err != nil {
					if onError != nil {
						onError(msg.err)
					}
				} else if onSnapshot != nil {
					onSnapshot(msg.records)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.done)
		})
	}
}

func (h *snapshotHub) publish(msg snapshotMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		select {
		case sub.ch <- msg:
		default:
			// subscriber lambat: drop, snapshot berikutnya tetap full replace
			log.Printf("[WARN] snapshot hub: subscriber %d penuh, pesan di-drop", id)
		}
	}
}
