package state

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KumKeeHyun/remotedata"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMemStore(t *testing.T) {
	store := NewSnapshotStore[int, string]()
	defer store.Close()

	assert.Equal(t, remotedata.NotAsked[string](), store.Get(1))

	store.Put(1, remotedata.Loading[string]())
	assert.Equal(t, remotedata.Loading[string](), store.Get(1))

	store.Put(1, remotedata.Ready("hello"))
	assert.Equal(t, remotedata.Ready("hello"), store.Get(1))

	store.Delete(1)
	assert.Equal(t, remotedata.NotAsked[string](), store.Get(1))
}

func TestMemStoreKeepLastReady(t *testing.T) {
	store := NewSnapshotStore(
		WithKeySerde[int, string](IntSerde),
		WithKeepLastReady[int, string](),
	)
	defer store.Close()

	// before anything is cached, transient states are stored as is
	store.Put(1, remotedata.Loading[string]())
	assert.Equal(t, remotedata.Loading[string](), store.Get(1))

	store.Put(1, remotedata.Ready("hello"))

	// a refresh entering Loading or Failure keeps the cached value
	store.Put(1, remotedata.Loading[string]())
	assert.Equal(t, remotedata.Ready("hello"), store.Get(1))
	store.Put(1, remotedata.FailWith[string](errors.New("timeout")))
	assert.Equal(t, remotedata.Ready("hello"), store.Get(1))

	// a new ready value replaces the cached one
	store.Put(1, remotedata.Ready("world"))
	assert.Equal(t, remotedata.Ready("world"), store.Get(1))
}

func TestBoltDBStore(t *testing.T) {
	store := NewSnapshotStore(
		WithBoltDB[int, string]("articles"),
		WithDirPath[int, string](t.TempDir()),
		WithKeySerde[int, string](IntSerde),
		WithValueSerde[int, string](StringSerde),
	)
	defer store.Close()

	assert.Equal(t, remotedata.NotAsked[string](), store.Get(1))

	store.Put(1, remotedata.Ready("hello"))
	assert.Equal(t, remotedata.Ready("hello"), store.Get(1))

	store.Put(2, remotedata.Loading[string]())
	assert.Equal(t, remotedata.Loading[string](), store.Get(2))

	store.Put(3, remotedata.FailWith[string](errors.New("timeout")))
	err, ok := store.Get(3).AsFailure()
	assert.True(t, ok)
	assert.EqualError(t, err, "timeout")

	store.Delete(1)
	assert.Equal(t, remotedata.NotAsked[string](), store.Get(1))
}

func TestBoltDBStoreReopen(t *testing.T) {
	dir := t.TempDir()
	newStore := func() SnapshotStore[int, string] {
		return NewSnapshotStore(
			WithBoltDB[int, string]("articles"),
			WithDirPath[int, string](dir),
		)
	}

	store := newStore()
	store.Put(1, remotedata.Ready("hello"))
	assert.NoError(t, store.Close())

	reopened := newStore()
	defer reopened.Close()
	assert.Equal(t, remotedata.Ready("hello"), reopened.Get(1))
}

func TestBoltDBStoreKeepLastReady(t *testing.T) {
	store := NewSnapshotStore(
		WithBoltDB[int, string]("articles"),
		WithDirPath[int, string](t.TempDir()),
		WithKeepLastReady[int, string](),
	)
	defer store.Close()

	store.Put(1, remotedata.Ready("hello"))
	store.Put(1, remotedata.Loading[string]())
	assert.Equal(t, remotedata.Ready("hello"), store.Get(1))
}

func TestConcurrentPutGet(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewSnapshotStore[int, string]()
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Put(i, remotedata.Ready(fmt.Sprintf("value %d-%d", i, j)))
				store.Get(i)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.True(t, store.Get(i).IsReady())
	}
}

func TestSnapshotSerde(t *testing.T) {
	serde := newSnapshotSerde[string](StringSerde)

	assert.Equal(t, remotedata.NotAsked[string](), serde.Deserialize(nil))
	assert.Equal(t,
		remotedata.NotAsked[string](),
		serde.Deserialize(serde.Serialize(remotedata.NotAsked[string]())))
	assert.Equal(t,
		remotedata.Loading[string](),
		serde.Deserialize(serde.Serialize(remotedata.Loading[string]())))
	assert.Equal(t,
		remotedata.Ready("hello"),
		serde.Deserialize(serde.Serialize(remotedata.Ready("hello"))))

	failed := serde.Deserialize(serde.Serialize(remotedata.FailWith[string](errors.New("timeout"))))
	err, ok := failed.AsFailure()
	assert.True(t, ok)
	assert.EqualError(t, err, "timeout")

	// payload-less failures stay payload-less
	bare := serde.Deserialize(serde.Serialize(remotedata.Fail[string]()))
	err, ok = bare.AsFailure()
	assert.True(t, ok)
	assert.Nil(t, err)
}
