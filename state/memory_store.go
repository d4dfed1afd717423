package state

import (
	"sync"

	"github.com/KumKeeHyun/remotedata"
)

func newMemSnapshotStore[K, V any](opts Options[K, V]) SnapshotStore[K, V] {
	return &memSnapshotStore[K, V]{
		store:         make(map[string]remotedata.RemoteData[V], 100),
		keySerde:      opts.KeySerde(),
		keepLastReady: opts.KeepLastReady(),
		mu:            sync.Mutex{},
	}
}

type memSnapshotStore[K, V any] struct {
	store         map[string]remotedata.RemoteData[V]
	keySerde      Serde[K]
	keepLastReady bool
	mu            sync.Mutex
}

var _ SnapshotStore[any, any] = &memSnapshotStore[any, any]{}

func (s *memSnapshotStore[K, V]) Get(key K) remotedata.RemoteData[V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	keySer := s.keySerde.Serialize(key)
	rd, exists := s.store[string(keySer)]
	if !exists {
		return remotedata.NotAsked[V]()
	}
	return rd
}

func (s *memSnapshotStore[K, V]) Put(key K, rd remotedata.RemoteData[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keySer := s.keySerde.Serialize(key)
	if s.keepLastReady {
		if prev, exists := s.store[string(keySer)]; exists && prev.IsReady() {
			rd = rd.Or(prev)
		}
	}
	s.store[string(keySer)] = rd
}

func (s *memSnapshotStore[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keySer := s.keySerde.Serialize(key)
	delete(s.store, string(keySer))
}

func (s *memSnapshotStore[K, V]) Close() error {
	return nil
}
