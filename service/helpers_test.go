package service

// scriptedRand feeds a fixed sequence of draws to code under test. It
// panics when the script runs dry so a test that consumes more
// randomness than expected fails loudly.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.values) {
		panic("scriptedRand: out of values")
	}
	v := r.values[r.pos]
	r.pos++
	if v >= n {
		panic("scriptedRand: scripted value out of range")
	}
	return v
}

func (r *scriptedRand) consumed() int {
	return r.pos
}
