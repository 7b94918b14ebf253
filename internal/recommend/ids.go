package recommend

import (
	"fmt"
	"sync/atomic"
	"time"
)

// IDGenerator returns a recommendation id that is unique within the process.
type IDGenerator func() string

// CounterIDGenerator returns a generator combining the current time with an
// atomic counter, so ids stay distinct across concurrent and repeated calls.
func CounterIDGenerator(now func() time.Time) IDGenerator {
	var counter atomic.Uint64

	return func() string {
		n := counter.Add(1)
		return fmt.Sprintf("rec_%d_%d", now().UnixMilli(), n)
	}
}
