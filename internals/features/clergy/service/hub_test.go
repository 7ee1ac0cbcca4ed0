package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clergyModel "aos_backend/internals/features/clergy/model"
)

// collector thread-safe untuk callback hub
type hubSink struct {
	mu        sync.Mutex
	snapshots [][]clergyModel.ClergyModel
	errs      []error
}

func (s *hubSink) onSnapshot(records []clergyModel.ClergyModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, records)
}

func (s *hubSink) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *hubSink) snapshotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots)
}

func (s *hubSink) errCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errs)
}

func TestHubDeliversInitialSnapshotToNewSubscriberOnly(t *testing.T) {
	hub := newSnapshotHub()

	first := &hubSink{}
	unsub1 := hub.subscribe(first.onSnapshot, first.onError, nil)
	defer unsub1()

	initial := &snapshotMessage{records: []clergyModel.ClergyModel{{ClergyFullName: "A"}}}
	second := &hubSink{}
	unsub2 := hub.subscribe(second.onSnapshot, second.onError, initial)
	defer unsub2()

	eventually(t, func() bool { return second.snapshotCount() == 1 })
	// subscriber lama tidak menerima initial milik subscriber baru
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, first.snapshotCount())
}

func TestHubPublishFansOut(t *testing.T) {
	hub := newSnapshotHub()

	a, b := &hubSink{}, &hubSink{}
	unsubA := hub.subscribe(a.onSnapshot, a.onError, nil)
	defer unsubA()
	unsubB := hub.subscribe(b.onSnapshot, b.onError, nil)
	defer unsubB()

	hub.publish(snapshotMessage{records: []clergyModel.ClergyModel{{ClergyFullName: "X"}}})

	eventually(t, func() bool { return a.snapshotCount() == 1 && b.snapshotCount() == 1 })
	require.Len(t, a.snapshots[0], 1)
	assert.Equal(t, "X", a.snapshots[0][0].ClergyFullName)
}

func TestHubRoutesErrorsToErrorCallback(t *testing.T) {
	hub := newSnapshotHub()

	sink := &hubSink{}
	unsub := hub.subscribe(sink.onSnapshot, sink.onError, nil)
	defer unsub()

	hub.publish(snapshotMessage{err: errors.New("subscription putus")})

	eventually(t, func() bool { return sink.errCount() == 1 })
	assert.Zero(t, sink.snapshotCount())
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := newSnapshotHub()

	sink := &hubSink{}
	unsub := hub.subscribe(sink.onSnapshot, sink.onError, nil)

	hub.publish(snapshotMessage{records: nil})
	eventually(t, func() bool { return sink.snapshotCount() == 1 })

	unsub()
	unsub() // idempoten

	hub.publish(snapshotMessage{records: nil})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sink.snapshotCount())
}
