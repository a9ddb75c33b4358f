package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/FilipeBeck/pipe-builder/internal/engine/flags"
	"go.trai.ch/zerr"
)

// runPipeline executes one pipeline and reports its completion.
func (b *Builder) runPipeline(ctx context.Context, rt *Runtime, chain hookChain, spec pipelineSpec) Result {
	start := time.Now()
	cb := spec.building

	ctx, span := b.tracer.Start(ctx, spec.taskID,
		ports.WithAttribute("building", cb.index),
		ports.WithAttribute("destination", cb.dest.Path),
	)
	defer span.End()

	files, err := b.execute(ctx, rt, chain, spec)

	res := Result{
		BuildingIndex: cb.index,
		TaskID:        spec.taskID,
		Files:         files,
		Duration:      time.Since(start),
	}
	span.SetAttribute("files", files)

	label := fmt.Sprintf("Task '%s'", spec.taskID)
	if err != nil {
		span.RecordError(err)
		b.reporter.Report(domain.ReportFailure, label, err.Error())
		res.Err = errors.Join(
			domain.ErrPipelineFailed,
			zerr.With(zerr.Wrap(err, label), "task", spec.taskID),
		)
	} else {
		b.reporter.Report(domain.ReportSuccess, append([]string{label}, cb.messages()...)...)
	}

	b.metrics.ObservePipeline(spec.taskID, res.Duration, files, err)
	return res
}

// execute wires source, change filter, hooks, task and sink, then drains the stream.
func (b *Builder) execute(ctx context.Context, rt *Runtime, chain hookChain, spec pipelineSpec) (files int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.Wrap(domain.ErrTransformPanicked, fmt.Sprint(r)), "task", spec.taskID)
		}
	}()

	cb := spec.building

	stream, err := b.source.Open(ctx, cb.source)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open source")
	}

	if ext, ok := cb.changeExtension(); ok && !rt.Flags.IsPresent(domain.OverwriteAllFlag) {
		stream = b.detector.Filter(stream, cb.dest, ext)
	}

	if stream, err = applyHooks(stream, chain.input, rt, spec.taskID, "input"); err != nil {
		return 0, err
	}

	if stream, err = apply(stream, spec.transform, spec.taskID); err != nil {
		return 0, zerr.Wrap(err, "task transform failed")
	}

	if stream, err = applyHooks(stream, chain.output, rt, spec.taskID, "output"); err != nil {
		return 0, err
	}

	return b.sink.Write(ctx, stream, cb.dest)
}

// applyHooks applies every entry whose flag is the always sentinel or present in the registry.
func applyHooks(
	stream *domain.Stream,
	entries []domain.HookEntry,
	rt *Runtime,
	taskID, stage string,
) (*domain.Stream, error) {
	for _, entry := range entries {
		if entry.Flag != domain.AlwaysFlag && !rt.Flags.IsPresent(flags.Token(entry.Flag)) {
			continue
		}
		var err error
		if stream, err = apply(stream, entry.Transform, taskID); err != nil {
			return nil, zerr.With(zerr.Wrap(err, stage+" hook failed"), "flag", entry.Flag)
		}
	}
	return stream, nil
}

func apply(stream *domain.Stream, transform domain.Transform, taskID string) (*domain.Stream, error) {
	if transform == nil {
		return stream, nil
	}
	out, err := transform(stream, taskID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, zerr.Wrap(domain.ErrTransformReturnedNil, "transform returned no stream")
	}
	return out, nil
}
