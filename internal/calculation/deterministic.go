package calculation

import "time"

// nowFunc stamps generated reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests). Nil restores time.Now.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}
