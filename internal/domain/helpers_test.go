package domain

// scriptedRand replays values in order, wrapping around, reduced mod n.
type scriptedRand struct {
	values []int
	next   int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	r.calls++
	return v % n
}

type recordedScores struct {
	scores []int
}

func (r *recordedScores) RecordHighScore(score int) {
	r.scores = append(r.scores, score)
}
