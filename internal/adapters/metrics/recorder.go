// Package metrics records pipeline measurements with Prometheus.
package metrics

import (
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

const namespace = "pipebuilder"

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Recorder implements ports.Metrics using Prometheus collectors.
// A nil Recorder records nothing.
type Recorder struct {
	registry         *prom.Registry
	pipelineDuration *prom.HistogramVec
	pipelineResults  *prom.CounterVec
	filesWritten     *prom.CounterVec
	buildDuration    prom.Histogram
	buildOutcomes    *prom.CounterVec
	buildPipelines   prom.Histogram
}

// NewRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	r := &Recorder{
		registry: reg,
		pipelineDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of individual pipelines",
			Buckets:   prom.DefBuckets,
		}, []string{"task", "result"}),
		pipelineResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_results_total",
			Help:      "Pipeline results by outcome",
		}, []string{"result"}),
		filesWritten: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_written_total",
			Help:      "Files written to destinations by task",
		}, []string{"task"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of build calls until every pipeline settled",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build call outcomes by final status",
		}, []string{"outcome"}),
		buildPipelines: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_pipelines",
			Help:      "Number of pipelines launched per build call",
			Buckets:   prom.ExponentialBuckets(1, 2, 8),
		}),
	}

	reg.MustRegister(
		r.pipelineDuration,
		r.pipelineResults,
		r.filesWritten,
		r.buildDuration,
		r.buildOutcomes,
		r.buildPipelines,
	)
	return r
}

// ObservePipeline records one settled pipeline.
func (r *Recorder) ObservePipeline(taskID string, d time.Duration, files int, err error) {
	if r == nil {
		return
	}
	res := result(err)
	r.pipelineDuration.WithLabelValues(taskID, res).Observe(d.Seconds())
	r.pipelineResults.WithLabelValues(res).Inc()
	r.filesWritten.WithLabelValues(taskID).Add(float64(files))
}

// ObserveBuild records one settled build call.
func (r *Recorder) ObserveBuild(d time.Duration, pipelines int, err error) {
	if r == nil {
		return
	}
	r.buildDuration.Observe(d.Seconds())
	r.buildOutcomes.WithLabelValues(result(err)).Inc()
	r.buildPipelines.Observe(float64(pipelines))
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prom.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes every collected metric to path in the text exposition
// format, for node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prom.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}
