// Package remotedata provides an immutable value type describing the
// point-in-time state of an asynchronous fetch: not asked, loading,
// failed, or ready with a value.
//
// RemoteData holds no reference to an in-flight operation. It neither
// starts, cancels, nor awaits anything; it is a plain snapshot replaced
// by the caller whenever the represented status changes. Values are
// safe to copy and to share across goroutines.
//
// The zero value of RemoteData[T] is NotAsked.
package remotedata
