package tetris

// scriptedRand replays a fixed sequence of values, wrapping around.
type scriptedRand struct {
	values []int
	next   int
}

func script(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}
