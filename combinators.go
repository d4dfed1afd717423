package remotedata

// Map applies mapper to the contained value if rd is ready, producing a
// RemoteData of the mapper's result type. Non-ready states pass through
// untouched and mapper is not invoked.
func Map[T, TR any](rd RemoteData[T], mapper func(T) TR) RemoteData[TR] {
	if rd.state != stateReady {
		return passThrough[TR](rd.join())
	}
	return Ready(mapper(rd.value))
}

// MapErr is Map for mappers that can fail. A mapper error turns a ready
// input into a Failure carrying that error.
func MapErr[T, TR any](rd RemoteData[T], mapper func(T) (TR, error)) RemoteData[TR] {
	if rd.state != stateReady {
		return passThrough[TR](rd.join())
	}
	v, err := mapper(rd.value)
	if err != nil {
		return FailWith[TR](err)
	}
	return Ready(v)
}

// FlatMap applies mapper to the contained value if rd is ready and
// returns the mapper's result as is. Non-ready states pass through
// untouched.
func FlatMap[T, TR any](rd RemoteData[T], mapper func(T) RemoteData[TR]) RemoteData[TR] {
	if rd.state != stateReady {
		return passThrough[TR](rd.join())
	}
	return mapper(rd.value)
}

// Flatten collapses a nested RemoteData. The outer state wins unless it
// is ready.
func Flatten[T any](rd RemoteData[RemoteData[T]]) RemoteData[T] {
	return FlatMap(rd, func(inner RemoteData[T]) RemoteData[T] {
		return inner
	})
}

// -------------------------------

// join is the state-only view of a RemoteData used by the n-ary
// combinators.
type join struct {
	state state
	err   error
}

func (rd RemoteData[T]) join() join {
	return join{
		state: rd.state,
		err:   rd.err,
	}
}

func passThrough[T any](j join) RemoteData[T] {
	return RemoteData[T]{
		state: j.state,
		err:   j.err,
	}
}

// joinAll resolves the combined state of several RemoteData values:
// the first Failure in argument order wins, else Loading if any input
// is loading, else NotAsked if any input is unasked, else Ready.
func joinAll(joins ...join) join {
	sawLoading, sawNotAsked := false, false
	for _, j := range joins {
		switch j.state {
		case stateFailure:
			return j
		case stateLoading:
			sawLoading = true
		case stateNotAsked:
			sawNotAsked = true
		}
	}
	if sawLoading {
		return join{state: stateLoading}
	}
	if sawNotAsked {
		return join{state: stateNotAsked}
	}
	return join{state: stateReady}
}

// All joins any number of RemoteData values of one element type. If
// every input is ready the result is ready with the unwrapped values in
// input order; All() with no inputs is ready with an empty slice.
func All[T any](rds ...RemoteData[T]) RemoteData[[]T] {
	joins := make([]join, len(rds))
	for i, rd := range rds {
		joins[i] = rd.join()
	}
	if j := joinAll(joins...); j.state != stateReady {
		return passThrough[[]T](j)
	}

	vs := make([]T, len(rds))
	for i, rd := range rds {
		vs[i] = rd.value
	}
	return Ready(vs)
}

// All2 joins two RemoteData values of independent element types.
func All2[T1, T2 any](rd1 RemoteData[T1], rd2 RemoteData[T2]) RemoteData[Pair[T1, T2]] {
	if j := joinAll(rd1.join(), rd2.join()); j.state != stateReady {
		return passThrough[Pair[T1, T2]](j)
	}
	return Ready(NewPair(rd1.value, rd2.value))
}

func All3[T1, T2, T3 any](
	rd1 RemoteData[T1],
	rd2 RemoteData[T2],
	rd3 RemoteData[T3],
) RemoteData[Tuple[T1, T2, T3]] {
	if j := joinAll(rd1.join(), rd2.join(), rd3.join()); j.state != stateReady {
		return passThrough[Tuple[T1, T2, T3]](j)
	}
	return Ready(NewTuple(rd1.value, rd2.value, rd3.value))
}

func All4[T1, T2, T3, T4 any](
	rd1 RemoteData[T1],
	rd2 RemoteData[T2],
	rd3 RemoteData[T3],
	rd4 RemoteData[T4],
) RemoteData[Tuple4[T1, T2, T3, T4]] {
	if j := joinAll(rd1.join(), rd2.join(), rd3.join(), rd4.join()); j.state != stateReady {
		return passThrough[Tuple4[T1, T2, T3, T4]](j)
	}
	return Ready(NewTuple4(rd1.value, rd2.value, rd3.value, rd4.value))
}

func All5[T1, T2, T3, T4, T5 any](
	rd1 RemoteData[T1],
	rd2 RemoteData[T2],
	rd3 RemoteData[T3],
	rd4 RemoteData[T4],
	rd5 RemoteData[T5],
) RemoteData[Tuple5[T1, T2, T3, T4, T5]] {
	if j := joinAll(rd1.join(), rd2.join(), rd3.join(), rd4.join(), rd5.join()); j.state != stateReady {
		return passThrough[Tuple5[T1, T2, T3, T4, T5]](j)
	}
	return Ready(NewTuple5(rd1.value, rd2.value, rd3.value, rd4.value, rd5.value))
}
