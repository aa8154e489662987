package drill

// Grade reports whether a raw answer matches any acceptable answer for
// the question. Set membership over normalized forms; no state is
// touched. A wrong answer is a normal outcome, not an error.
func Grade(q *Question, raw string) bool {
	n := Normalize(raw)
	for _, want := range q.Expected {
		if n == want {
			return true
		}
	}
	return false
}
