package rebin

import "sync/atomic"

// Stage identifies the loop an [Observer] is being notified about.
type Stage int

const (
	// StageInterpolate counts interpolated output samples or planes.
	StageInterpolate Stage = iota
	// StageBox counts box-integrated output bins or planes.
	StageBox
	// StageRows counts output lines of the first [Rebin2D] pass.
	StageRows
	// StageColumns counts output lines of the second [Rebin2D] pass.
	StageColumns
)

// String returns a short stage name.
func (s Stage) String() string {
	switch s {
	case StageInterpolate:
		return "interpolate"
	case StageBox:
		return "box"
	case StageRows:
		return "rows"
	case StageColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// Observer receives progress notifications. done counts finished units of
// stage out of total. Every value 1..total is reported exactly once per
// stage; with several workers the calls may arrive out of order.
type Observer interface {
	Progress(stage Stage, done, total int)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(stage Stage, done, total int)

// Progress calls f.
func (f ObserverFunc) Progress(stage Stage, done, total int) { f(stage, done, total) }

type progress struct {
	obs   Observer
	stage Stage
	total int
	done  atomic.Int64
}

// newProgress returns nil when there is nobody to notify; step is a no-op on nil.
func newProgress(obs Observer, stage Stage, total int) *progress {
	if obs == nil {
		return nil
	}
	return &progress{obs: obs, stage: stage, total: total}
}

func (p *progress) step() {
	if p == nil {
		return
	}
	p.obs.Progress(p.stage, int(p.done.Add(1)), p.total)
}
