package remotedata

type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

func NewPair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return Pair[T1, T2]{
		First:  v1,
		Second: v2,
	}
}

type Tuple[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

func NewTuple[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Tuple[T1, T2, T3] {
	return Tuple[T1, T2, T3]{
		First:  v1,
		Second: v2,
		Third:  v3,
	}
}

type Tuple4[T1, T2, T3, T4 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
}

func NewTuple4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{
		First:  v1,
		Second: v2,
		Third:  v3,
		Fourth: v4,
	}
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
	Fifth  T5
}

func NewTuple5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{
		First:  v1,
		Second: v2,
		Third:  v3,
		Fourth: v4,
		Fifth:  v5,
	}
}
