package state

import (
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/KumKeeHyun/remotedata"
	bolt "go.etcd.io/bbolt"
)

const (
	dbFile = "remotedata.db"
)

var (
	dbs     = map[string]*bolt.DB{}
	dbslock = sync.Mutex{}
)

func getBoltDB(path string) *bolt.DB {
	dbslock.Lock()
	defer dbslock.Unlock()

	db, exists := dbs[path]
	if exists {
		return db
	}

	newDB := openBoltDB(path)
	dbs[path] = newDB
	return newDB
}

func openBoltDB(path string) *bolt.DB {
	bopts := &bolt.Options{}
	bopts.Timeout = time.Second

	db, err := bolt.Open(path, 0600, bopts)
	if err != nil {
		// TODO: handle error
		panic(err)
	}
	return db
}

func newBoltDBSnapshotStore[K, V any](opts Options[K, V]) SnapshotStore[K, V] {
	dbPath := path.Join(opts.DirPath(), dbFile)
	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		panic(err)
	}
	db := getBoltDB(dbPath)

	// Create new bucket with Options.Name().
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(opts.Name()))
		return err
	})
	if err != nil {
		// TODO: handle error
		panic(err)
	}

	return &boltDBSnapshotStore[K, V]{
		db:            db,
		bucket:        []byte(opts.Name()),
		keySerde:      opts.KeySerde(),
		snapSerde:     newSnapshotSerde(opts.ValueSerde()),
		keepLastReady: opts.KeepLastReady(),
	}
}

type boltDBSnapshotStore[K, V any] struct {
	db            *bolt.DB
	bucket        []byte
	keySerde      Serde[K]
	snapSerde     Serde[remotedata.RemoteData[V]]
	keepLastReady bool
}

var _ SnapshotStore[any, any] = &boltDBSnapshotStore[any, any]{}

func (s *boltDBSnapshotStore[K, V]) Get(key K) (rd remotedata.RemoteData[V]) {
	_ = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		rd = s.snapSerde.Deserialize(b.Get(s.keySerde.Serialize(key)))
		return nil
	})
	return
}

func (s *boltDBSnapshotStore[K, V]) Put(key K, rd remotedata.RemoteData[V]) {
	_ = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		keySer := s.keySerde.Serialize(key)
		if s.keepLastReady {
			if prev := s.snapSerde.Deserialize(b.Get(keySer)); prev.IsReady() {
				rd = rd.Or(prev)
			}
		}
		return b.Put(keySer, s.snapSerde.Serialize(rd))
	})
}

func (s *boltDBSnapshotStore[K, V]) Delete(key K) {
	_ = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		return b.Delete(s.keySerde.Serialize(key))
	})
}

func (s *boltDBSnapshotStore[K, V]) Close() error {
	dbslock.Lock()
	defer dbslock.Unlock()

	for path, db := range dbs {
		if db == s.db {
			delete(dbs, path)
		}
	}
	return s.db.Close()
}
