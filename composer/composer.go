package composer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rankreel/adapter"
	"rankreel/config"
	"rankreel/schema"
	"rankreel/timeline"
	"rankreel/types"
)

// StatusReporter hands job progress to the status-reporting
// collaborator (Redis store, Kafka status topic, test fake). Reporters
// must tolerate repeated updates for the same job.
type StatusReporter interface {
	Report(ctx context.Context, update types.JobUpdate) error
}

// ArtifactStore persists the composed, validated document and returns
// an output-location reference for status write-back.
type ArtifactStore interface {
	Put(ctx context.Context, key string, spec *types.VideoSpec) (string, error)
}

// Result is everything one successful compose job produced.
type Result struct {
	JobID     string             `json:"job_id"`
	Spec      *types.VideoSpec   `json:"spec"`
	Timeline  *timeline.Timeline `json:"timeline"`
	OutputRef string             `json:"output_ref,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// Composer runs the full normalization-to-timeline pipeline for one
// record. It holds no per-job state, so concurrent jobs need no
// coordination; reporters and stores are optional and skipped when nil.
type Composer struct {
	format    config.Format
	reporters []StatusReporter
	artifacts ArtifactStore
	log       *logrus.Entry
}

// New builds a Composer for a format. Any reporter or artifact store
// may be nil; composition itself never requires I/O.
func New(format config.Format, artifacts ArtifactStore, reporters ...StatusReporter) (*Composer, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("composer: %w", err)
	}

	return &Composer{
		format:    format,
		reporters: reporters,
		artifacts: artifacts,
		log:       logrus.WithField("component", "composer"),
	}, nil
}

// Compose turns one raw external record into a validated VideoSpec and
// frame-exact timeline. Parse fallbacks and missing non-critical assets
// come back as warnings; validation errors and timeline invariant
// violations fail the job.
func (c *Composer) Compose(ctx context.Context, jobID string, rawRecord []byte) (*Result, error) {
	log := c.log.WithField("job_id", jobID)
	c.report(ctx, types.JobUpdate{JobID: jobID, Status: types.StatusProcessing, UpdatedAt: time.Now().UTC()})

	var rec adapter.SourceRecord
	if err := json.Unmarshal(rawRecord, &rec); err != nil {
		err = fmt.Errorf("decode record: %w", err)
		c.fail(ctx, jobID, err)
		return nil, err
	}

	built := adapter.Build(&rec)

	warnings := make([]string, 0, len(built.Warnings))
	for _, w := range built.Warnings {
		warnings = append(warnings, w.String())
		log.WithField("field", w.Field).Warn(w.Message)
	}

	candidate := &types.VideoSpec{
		Meta:     c.format.Meta(),
		Timeline: c.format.Budget(),
		Audio:    built.Audio,
		Intro:    built.Intro,
		Products: built.Products,
		Outro:    built.Outro,
		Datasource: &types.Datasource{
			Provider: "sheet",
			RowRef:   rec.RowRef().String(),
		},
	}

	spec, err := schema.Validate(candidate)
	if err != nil {
		var vf *schema.ValidationFailure
		if errors.As(err, &vf) {
			log.WithField("problems", len(vf.Errors)).Error("record failed validation")
			c.report(ctx, types.JobUpdate{
				JobID:     jobID,
				Status:    types.StatusFailed,
				Errors:    vf.Messages(),
				Warnings:  warnings,
				UpdatedAt: time.Now().UTC(),
			})
			return nil, vf
		}
		c.fail(ctx, jobID, err)
		return nil, err
	}

	tl, err := timeline.Assemble(spec.Timeline, spec.Meta.FPS, c.format.TotalFrames)
	if err != nil {
		c.fail(ctx, jobID, err)
		return nil, err
	}

	result := &Result{
		JobID:    jobID,
		Spec:     spec,
		Timeline: tl,
		Warnings: warnings,
	}

	if c.artifacts != nil {
		ref, err := c.artifacts.Put(ctx, jobID, spec)
		if err != nil {
			err = fmt.Errorf("persist composed spec: %w", err)
			c.fail(ctx, jobID, err)
			return nil, err
		}
		result.OutputRef = ref
	}

	c.report(ctx, types.JobUpdate{
		JobID:     jobID,
		Status:    types.StatusSuccess,
		OutputRef: result.OutputRef,
		Warnings:  warnings,
		UpdatedAt: time.Now().UTC(),
	})

	log.WithFields(logrus.Fields{
		"total_frames": tl.TotalFrames,
		"seconds":      tl.Seconds(),
		"warnings":     len(warnings),
	}).Info("composed video spec")

	return result, nil
}

// Format exposes the composer's format for ingress layers.
func (c *Composer) Format() config.Format { return c.format }

func (c *Composer) fail(ctx context.Context, jobID string, err error) {
	c.log.WithField("job_id", jobID).WithError(err).Error("compose job failed")
	c.report(ctx, types.JobUpdate{
		JobID:     jobID,
		Status:    types.StatusFailed,
		Errors:    []string{err.Error()},
		UpdatedAt: time.Now().UTC(),
	})
}

func (c *Composer) report(ctx context.Context, update types.JobUpdate) {
	for _, r := range c.reporters {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, update); err != nil {
			// Status fan-out is best effort; the job result is returned
			// to the caller regardless.
			c.log.WithField("job_id", update.JobID).WithError(err).Warn("status report failed")
		}
	}
}
