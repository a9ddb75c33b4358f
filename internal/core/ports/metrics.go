package ports

import "time"

// Metrics records pipeline and build measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObservePipeline records one settled pipeline.
	ObservePipeline(taskID string, d time.Duration, files int, err error)
	// ObserveBuild records one settled build call.
	ObserveBuild(d time.Duration, pipelines int, err error)
}
