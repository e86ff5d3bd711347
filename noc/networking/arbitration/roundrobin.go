// Package arbitration decides which of several contenders is serviced next.
package arbitration

import "fmt"

// RoundRobin grants contenders 0..n-1 in cyclic order. After a grant, the
// contender right after the granted one has the highest priority, so no
// contender waits for more than n-1 grants.
type RoundRobin struct {
	n    int
	next int
}

// NewRoundRobin creates an arbiter over n contenders that favors contender 0
// first.
func NewRoundRobin(n int) *RoundRobin {
	if n <= 0 {
		panic(fmt.Sprintf("round robin needs at least one contender, got %d", n))
	}

	return &RoundRobin{n: n}
}

// NumContenders returns the number of contenders.
func (a *RoundRobin) NumContenders() int {
	return a.n
}

// Cursor returns the contender that has the highest priority.
func (a *RoundRobin) Cursor() int {
	return a.next
}

// Find returns the first ready contender starting from the cursor and
// wrapping around. It does not change the arbiter state.
func (a *RoundRobin) Find(ready func(i int) bool) (int, bool) {
	turn := a.next

	for k := 0; k < a.n; k++ {
		if ready(turn) {
			return turn, true
		}

		turn = (turn + 1) % a.n
	}

	return 0, false
}

// Grant records that contender i has been serviced.
func (a *RoundRobin) Grant(i int) {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("contender %d out of range [0, %d)", i, a.n))
	}

	a.next = (i + 1) % a.n
}

// Arbitrate finds a ready contender and grants it. The cursor stays where it
// is if no contender is ready.
func (a *RoundRobin) Arbitrate(ready func(i int) bool) (int, bool) {
	i, found := a.Find(ready)
	if found {
		a.Grant(i)
	}

	return i, found
}
