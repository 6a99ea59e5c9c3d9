package island

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"island-gen/internal/core"
)

const (
	// LandHeight is the flat elevation written for land cells before shores run.
	LandHeight float32 = 0.1
	// ShoreCeiling caps what the falloff may overwrite. Cells already at or
	// above it (land) are never touched.
	ShoreCeiling float32 = 0.1

	// referenceResolution is the host size MaxRadius is tuned for.
	referenceResolution = 512
)

// ErrShoreJobRunning is returned when a second shore job is started, or the
// island is committed, while a job still writes to its elevation buffer.
var ErrShoreJobRunning = errors.New("shore job already running")

// ScaledMaxRadius converts a radius tuned at the 512px reference into one for
// the given host resolution.
func ScaledMaxRadius(maxRadius, resolution int) int {
	return int(float64(maxRadius) * (float64(resolution) - 1) / referenceResolution)
}

// ShoreJob is a handle to one background shore falloff run. Progress and
// cancellation are lock-free; the elevation buffer is written in place and is
// only a consistent result once Done is closed.
type ShoreJob struct {
	mask      *core.ByteGrid
	heights   *core.HeightGrid
	maxRadius int

	total     int64
	processed atomic.Int64
	cancel    atomic.Bool
	cancelled atomic.Bool
	finished  atomic.Bool
	done      chan struct{}

	started time.Time
}

func newShoreJob(mask *core.ByteGrid, heights *core.HeightGrid, maxRadius int) *ShoreJob {
	return &ShoreJob{
		mask:      mask,
		heights:   heights,
		maxRadius: maxRadius,
		total:     int64(mask.W) * int64(mask.H),
		done:      make(chan struct{}),
	}
}

func (j *ShoreJob) start(ctx context.Context) {
	j.started = time.Now()
	go j.run(ctx)
}

func (j *ShoreJob) run(ctx context.Context) {
	defer func() {
		j.finished.Store(true)
		// The cancel flag is only cleared once the worker has seen it and stopped.
		j.cancel.Store(false)
		close(j.done)
	}()

	log := Logger()
	w, h := j.mask.W, j.mask.H
	cells := j.mask.Cells()
	for y := 0; y < h; y++ {
		if j.cancel.Load() || ctx.Err() != nil {
			j.cancelled.Store(true)
			log.Info("shore job cancelled", "rows", y, "progress", j.ProgressText())
			return
		}
		for x := 0; x < w; x++ {
			if cells[y*w+x] == Shore {
				dropShore(j.heights, x, y, j.maxRadius)
			}
			j.processed.Add(1)
		}
	}
	log.Info("shore job finished", "cells", j.total, "elapsed", time.Since(j.started).Round(time.Millisecond))
}

// dropShore raises the elevation around (cx, cy) with a sine-product bump
// spanning 2r cells per axis. A cell only takes the bump if it is below the
// ceiling and not already higher, so overlapping bumps keep the maximum.
func dropShore(heights *core.HeightGrid, cx, cy, maxRadius int) {
	w, h := heights.W, heights.H
	r := min(w, w-cx, h-cy, cx, cy, maxRadius)
	if r <= 0 {
		return
	}
	span := 2 * r
	cells := heights.Cells()
	for j := 0; j < span; j++ {
		sv := math.Sin(float64(j) / float64(span) * math.Pi)
		row := (cy - r + j) * w
		for i := 0; i < span; i++ {
			su := math.Sin(float64(i) / float64(span) * math.Pi)
			bump := float32(su / 10 * sv)
			idx := row + cx - r + i
			if cur := cells[idx]; cur < ShoreCeiling && cur <= bump {
				cells[idx] = bump
			}
		}
	}
}

// Progress returns the processed fraction in [0, 1].
func (j *ShoreJob) Progress() float64 {
	if j.total == 0 {
		return 1
	}
	return float64(j.processed.Load()) / float64(j.total)
}

// ProgressText formats Progress as a whole percentage such as "42%".
func (j *ShoreJob) ProgressText() string {
	return fmt.Sprintf("%.0f%%", j.Progress()*100)
}

// Processed returns how many mask cells the worker has visited.
func (j *ShoreJob) Processed() int64 { return j.processed.Load() }

// Total returns the number of mask cells the job visits.
func (j *ShoreJob) Total() int64 { return j.total }

// RequestCancel asks the worker to stop at the next row boundary. It has no
// effect once the job finished or a cancel is already pending.
func (j *ShoreJob) RequestCancel() {
	if !j.cancel.CompareAndSwap(false, true) {
		return
	}
	// The worker may have cleared the flag for the last time before the swap.
	if j.finished.Load() {
		j.cancel.Store(false)
		return
	}
	Logger().Debug("shore job cancel requested", "progress", j.ProgressText())
}

// Done is closed when the worker exits.
func (j *ShoreJob) Done() <-chan struct{} { return j.done }

// IsDone reports whether the worker has exited.
func (j *ShoreJob) IsDone() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the worker exits.
func (j *ShoreJob) Wait() {
	<-j.done
}

// Cancelled reports whether the job stopped before visiting every row. Only
// meaningful after Done is closed.
func (j *ShoreJob) Cancelled() bool { return j.cancelled.Load() }
