package state

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/KumKeeHyun/remotedata"
)

type Serde[T any] interface {
	Serialize(T) []byte
	Deserialize([]byte) T
}

var (
	IntSerde    Serde[int]    = &intSerde{}
	StringSerde Serde[string] = &stringSerde{}
)

type intSerde struct{}

var _ Serde[int] = &intSerde{}

func (*intSerde) Serialize(i int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}

func (*intSerde) Deserialize(b []byte) int {
	return int(binary.BigEndian.Uint64(b))
}

type stringSerde struct{}

var _ Serde[string] = &stringSerde{}

func (*stringSerde) Serialize(s string) []byte {
	return []byte(s)
}

func (*stringSerde) Deserialize(b []byte) string {
	return string(b)
}

func NewJSONSerde[T any]() Serde[T] {
	return &jsonSerde[T]{}
}

type jsonSerde[T any] struct{}

var _ Serde[any] = &jsonSerde[any]{}

func (*jsonSerde[T]) Serialize(o T) []byte {
	res, _ := json.Marshal(o)
	return res
}

func (*jsonSerde[T]) Deserialize(b []byte) T {
	var res T
	_ = json.Unmarshal(b, &res)
	return res
}

// -------------------------------

const (
	snapNotAsked = "not_asked"
	snapLoading  = "loading"
	snapFailure  = "failure"
	snapReady    = "ready"
)

type snapshot struct {
	State string `json:"state"`
	Value []byte `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// newSnapshotSerde wraps a payload serde into one for whole RemoteData
// values. Failure payloads survive as messages only (rebuilt with
// errors.New on load); a nil or empty-message payload loads as nil.
// Empty input deserializes to NotAsked.
func newSnapshotSerde[V any](valSerde Serde[V]) Serde[remotedata.RemoteData[V]] {
	return &snapshotSerde[V]{valSerde: valSerde}
}

type snapshotSerde[V any] struct {
	valSerde Serde[V]
}

var _ Serde[remotedata.RemoteData[any]] = &snapshotSerde[any]{}

func (s *snapshotSerde[V]) Serialize(rd remotedata.RemoteData[V]) []byte {
	env := snapshot{}
	switch {
	case rd.IsReady():
		env.State = snapReady
		v, _ := rd.AsReady()
		env.Value = s.valSerde.Serialize(v)
	case rd.IsFailure():
		env.State = snapFailure
		if err, _ := rd.AsFailure(); err != nil {
			env.Error = err.Error()
		}
	case rd.IsLoading():
		env.State = snapLoading
	default:
		env.State = snapNotAsked
	}

	b, _ := json.Marshal(env)
	return b
}

func (s *snapshotSerde[V]) Deserialize(b []byte) remotedata.RemoteData[V] {
	if len(b) == 0 {
		return remotedata.NotAsked[V]()
	}

	var env snapshot
	_ = json.Unmarshal(b, &env)
	switch env.State {
	case snapReady:
		return remotedata.Ready(s.valSerde.Deserialize(env.Value))
	case snapFailure:
		if env.Error == "" {
			return remotedata.Fail[V]()
		}
		return remotedata.FailWith[V](errors.New(env.Error))
	case snapLoading:
		return remotedata.Loading[V]()
	default:
		return remotedata.NotAsked[V]()
	}
}
