package state

import (
	"github.com/KumKeeHyun/remotedata"
)

// SnapshotStore caches the last known RemoteData per request key.
// A key that was never put is NotAsked. Implementations are safe for
// concurrent use.
type SnapshotStore[K, V any] interface {
	Get(key K) remotedata.RemoteData[V]
	Put(key K, rd remotedata.RemoteData[V])
	Delete(key K)
	Close() error
}

func NewSnapshotStore[K, V any](opts ...Option[K, V]) SnapshotStore[K, V] {
	o := NewOptions(opts...)
	switch o.StoreType() {
	case BoltDB:
		return newBoltDBSnapshotStore[K, V](o)
	default:
		return newMemSnapshotStore[K, V](o)
	}
}
