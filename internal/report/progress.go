package report

import "time"

// ProgressReporter receives pipeline milestones. The generator calls it from
// a single goroutine.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(configFiles int)
	OnExtractionStart(totalFiles int)
	OnFileProcessed(path string)
	OnComplete(stats *Stats, elapsed time.Duration)
}

// NoopProgress discards all progress events.
type NoopProgress struct{}

func (NoopProgress) OnDiscoveryStart()                {}
func (NoopProgress) OnDiscoveryComplete(int)          {}
func (NoopProgress) OnExtractionStart(int)            {}
func (NoopProgress) OnFileProcessed(string)           {}
func (NoopProgress) OnComplete(*Stats, time.Duration) {}
