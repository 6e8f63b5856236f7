package repository

import "time"

// QueryObserver records the duration of one named query. A nil observer
// disables timing.
type QueryObserver interface {
	ObserveDBQuery(query string, duration time.Duration)
}

func observe(obs QueryObserver, name string, start time.Time) {
	if obs != nil {
		obs.ObserveDBQuery(name, time.Since(start))
	}
}
