package monitoring

import (
	"encoding/json"
	"sync"
	"time"
)

// A ProgressBar tracks how many of a fixed number of steps are done. The
// simulation advances it while the server reads it.
type ProgressBar struct {
	lock sync.Mutex

	ID        string
	Name      string
	StartTime time.Time
	Total     uint64
	finished  uint64
}

// IncrementFinished marks amount more steps as done.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.finished += amount
	if b.Total > 0 && b.finished > b.Total {
		b.finished = b.Total
	}
}

// Finished returns the number of steps done.
func (b *ProgressBar) Finished() uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.finished
}

type progressRsp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
	Elapsed   float64   `json:"elapsed_seconds"`
}

// MarshalJSON takes a consistent snapshot of the bar.
func (b *ProgressBar) MarshalJSON() ([]byte, error) {
	b.lock.Lock()
	rsp := progressRsp{
		ID:        b.ID,
		Name:      b.Name,
		StartTime: b.StartTime,
		Total:     b.Total,
		Finished:  b.finished,
	}
	b.lock.Unlock()

	rsp.Elapsed = time.Since(rsp.StartTime).Seconds()

	return json.Marshal(rsp)
}
