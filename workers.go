package main

import (
	"time"

	"newsroom-video/intake"
	"newsroom-video/transcode"
)

// startTranscodeWorkers brings up the queued-mode pool. Each worker drains
// the jobs table, then polls for new work. Concurrency is bounded by the
// pool size; job claims keep two workers off the same row.
func startTranscodeWorkers(runner transcode.Runner, n int) {
	log.Infof("starting %d transcode workers", n)
	for i := 0; i < n; i++ {
		go transcodeWorker(runner)
	}
}

func transcodeWorker(runner transcode.Runner) {
	intake.ProcessPending(runner)
	ticker := time.NewTicker(10 * time.Second)
	for range ticker.C {
		intake.ProcessPending(runner)
	}
}
