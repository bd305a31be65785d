package booking

import (
	"fmt"
	"sync"
	"time"
)

// courtDateLock serializes booking creation per (court, date). Two
// concurrent attempts for the same court and day run their
// check-then-insert sequence one after the other, so the second writer
// observes the first one's booking and loses with a conflict.
//
// Lock entries are a key string and a mutex each and are kept for the
// process lifetime; the key space (courts x days actually booked) stays
// small enough that reaping is not worth the bookkeeping.
type courtDateLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCourtDateLock() *courtDateLock {
	return &courtDateLock{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for the court+date and returns its unlock.
func (l *courtDateLock) lock(courtID int64, date time.Time) func() {
	key := fmt.Sprintf("%d:%s", courtID, date.Format("2006-01-02"))

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
