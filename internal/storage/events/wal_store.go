// Package events persists detected aspect and ingress events in an
// append-only write-ahead log so a run's event stream can be replayed.
package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"

	"github.com/minhvu-dev/ephemeris/internal/domain"
)

const (
	DefaultDir   = "./wal/events"
	segmentLimit = 1000
	maxSegments  = 20

	aspectKeyPrefix  = "aspect_"
	ingressKeyPrefix = "ingress_"
)

// EventType discriminates journaled event payloads.
type EventType string

const (
	EventTypeAspect  EventType = "aspect"
	EventTypeIngress EventType = "ingress"
)

// EventRecord bundles a journaled event with its WAL index.
type EventRecord struct {
	Index uint64
	Type  EventType
	// Event is either domain.AspectEvent or domain.IngressEvent
	Event any
}

// WALStore journals events in a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore initializes a WAL-backed event journal.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "event_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: false,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init event WAL")
	}

	return &WALStore{wal: wal}, nil
}

// SaveAspect appends an aspect event to the journal.
func (s *WALStore) SaveAspect(event domain.AspectEvent) error {
	if s == nil || s.wal == nil {
		return errors.New("event journal is not initialized")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal aspect event")
	}

	key := fmt.Sprintf("%s%s_%s", aspectKeyPrefix, event.Planet1, event.Planet2)

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, key, payload)
}

// SaveIngress appends an ingress event to the journal.
func (s *WALStore) SaveIngress(event domain.IngressEvent) error {
	if s == nil || s.wal == nil {
		return errors.New("event journal is not initialized")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal ingress event")
	}

	key := fmt.Sprintf("%s%s", ingressKeyPrefix, event.Planet)

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, key, payload)
}

// EventsAfter replays all events journaled after the provided WAL index.
func (s *WALStore) EventsAfter(index uint64) ([]EventRecord, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("event journal is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	if current <= index {
		return nil, nil
	}

	records := make([]EventRecord, 0, current-index)
	for idx := index + 1; idx <= current; idx++ {
		key, payload, err := s.wal.Get(idx)
		if err != nil {
			continue
		}

		if strings.HasPrefix(key, aspectKeyPrefix) {
			var event domain.AspectEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return nil, errors.Wrap(err, "decode aspect event")
			}
			records = append(records, EventRecord{Index: idx, Type: EventTypeAspect, Event: event})
		} else if strings.HasPrefix(key, ingressKeyPrefix) {
			var event domain.IngressEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return nil, errors.Wrap(err, "decode ingress event")
			}
			records = append(records, EventRecord{Index: idx, Type: EventTypeIngress, Event: event})
		}
	}

	return records, nil
}

// CurrentIndex returns the latest WAL index stored.
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wal.CurrentIndex()
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("event journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
