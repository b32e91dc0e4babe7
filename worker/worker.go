package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var jobs = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go run()
	}
}

func run() {
	defer sentry.Recover()

	for {
		f, ok := <-jobs
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f on the shared pool. To be used by work that may be CPU
// intensive, such as encoding snapshots.
func Submit(f func()) {
	jobs <- f
}
