package domain

import "time"

// IntakeStats summarizes one intake tick.
type IntakeStats struct {
	Fetched        int
	Matched        int
	New            int
	Duplicates     int
	Notified       int
	NotifyFailures int
	QueuedBatched  int
	QueuedOutreach int
	Errors         int
	Duration       time.Duration
}

// DigestStats summarizes one batched-tier tick.
type DigestStats struct {
	Subscribers int // subscribers that had pending notifications
	Delivered   int // bundles delivered
	Articles    int // articles covered by delivered bundles
	Failures    int // bundles left pending after a transport failure
	Duration    time.Duration
}
