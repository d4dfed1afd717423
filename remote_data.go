package remotedata

import (
	"errors"
	"fmt"
)

type state uint8

const (
	stateNotAsked state = iota
	stateLoading
	stateFailure
	stateReady
)

func (s state) String() string {
	switch s {
	case stateNotAsked:
		return "NotAsked"
	case stateLoading:
		return "Loading"
	case stateFailure:
		return "Failure"
	default:
		return "Ready"
	}
}

// ErrNotReady wraps the error returned by Get for the NotAsked and
// Loading states.
var ErrNotReady = errors.New("remotedata: not ready")

// RemoteData is a value in exactly one of four states: NotAsked,
// Loading, Failure or Ready. The zero value is NotAsked.
type RemoteData[T any] struct {
	state state
	err   error
	value T
}

func NotAsked[T any]() RemoteData[T] {
	return RemoteData[T]{}
}

func Loading[T any]() RemoteData[T] {
	return RemoteData[T]{state: stateLoading}
}

func Ready[T any](v T) RemoteData[T] {
	return RemoteData[T]{
		state: stateReady,
		value: v,
	}
}

// FailWith constructs a Failure carrying err. The payload is opaque to
// this package; err may be nil.
func FailWith[T any](err error) RemoteData[T] {
	return RemoteData[T]{
		state: stateFailure,
		err:   err,
	}
}

// Fail constructs a Failure with no error payload.
func Fail[T any]() RemoteData[T] {
	return FailWith[T](nil)
}

// -------------------------------

func (rd RemoteData[T]) IsNotAsked() bool {
	return rd.state == stateNotAsked
}

func (rd RemoteData[T]) IsLoading() bool {
	return rd.state == stateLoading
}

func (rd RemoteData[T]) IsFailure() bool {
	return rd.state == stateFailure
}

func (rd RemoteData[T]) IsReady() bool {
	return rd.state == stateReady
}

// State returns the name of the current state.
func (rd RemoteData[T]) State() string {
	return rd.state.String()
}

// -------------------------------

// AsReady returns the contained value if rd is ready.
func (rd RemoteData[T]) AsReady() (v T, ok bool) {
	if rd.state != stateReady {
		return v, false
	}
	return rd.value, true
}

// AsFailure returns the error payload if rd is a Failure. The payload
// may be nil even when ok is true.
func (rd RemoteData[T]) AsFailure() (err error, ok bool) {
	if rd.state != stateFailure {
		return nil, false
	}
	return rd.err, true
}

// GetOr returns the contained value if rd is ready, else fallback.
func (rd RemoteData[T]) GetOr(fallback T) T {
	if rd.state != stateReady {
		return fallback
	}
	return rd.value
}

// Get returns the contained value, the failure payload, or an error
// wrapping ErrNotReady for the NotAsked and Loading states.
func (rd RemoteData[T]) Get() (v T, err error) {
	switch rd.state {
	case stateReady:
		return rd.value, nil
	case stateFailure:
		return v, rd.err
	default:
		return v, fmt.Errorf("%w: %s", ErrNotReady, rd.state)
	}
}

// Unwrap returns the contained value. It panics if rd is not ready;
// call it only when readiness is already established.
func (rd RemoteData[T]) Unwrap() T {
	if rd.state != stateReady {
		panic(fmt.Sprintf("remotedata: unwrap of %s value", rd.state))
	}
	return rd.value
}

// -------------------------------

// Or returns rd if ready, else other. Keeps a previously ready value
// visible while a refresh is loading or has failed.
func (rd RemoteData[T]) Or(other RemoteData[T]) RemoteData[T] {
	if rd.state == stateReady {
		return rd
	}
	return other
}

// Map applies mapper to the contained value if rd is ready. Non-ready
// states pass through untouched. Use the package-level Map to change
// the element type.
func (rd RemoteData[T]) Map(mapper func(T) T) RemoteData[T] {
	return Map(rd, mapper)
}
