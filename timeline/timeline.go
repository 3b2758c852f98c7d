package timeline

import (
	"errors"
	"fmt"

	"rankreel/types"
)

// SceneKind labels one temporally-contiguous segment of the video.
type SceneKind string

const (
	SceneIntro   SceneKind = "intro"
	SceneProduct SceneKind = "product"
	SceneOutro   SceneKind = "outro"
)

// ErrFrameBudget is the hard invariant violation raised when the summed
// scene lengths do not equal the target duration. A job must never
// proceed to rendering with an inconsistent timeline.
var ErrFrameBudget = errors.New("timeline: frame budget does not match target duration")

// Scene is one laid-out segment with its absolute [Start, End) frame
// interval. BlendIn/BlendOut are the cross-fade windows shared with the
// neighboring scenes; they are rendering instructions only and never
// shorten the interval.
type Scene struct {
	Kind     SceneKind `json:"kind"`
	Rank     int       `json:"rank,omitempty"` // product scenes only, 1..5
	Start    int       `json:"start"`
	End      int       `json:"end"`
	BlendIn  int       `json:"blend_in"`
	BlendOut int       `json:"blend_out"`
}

// Frames is the scene length in frames.
func (s Scene) Frames() int { return s.End - s.Start }

// Timeline is the frame-exact scene layout for one video: intro, the
// five product scenes in countdown order (rank 5 first, rank 1 last),
// then outro.
type Timeline struct {
	Scenes      []Scene `json:"scenes"`
	TotalFrames int     `json:"total_frames"`
	FPS         int     `json:"fps"`
}

// Seconds is the visible duration implied by the layout.
func (t *Timeline) Seconds() float64 {
	if t.FPS == 0 {
		return 0
	}
	return float64(t.TotalFrames) / float64(t.FPS)
}

// Assemble lays out scene intervals from the frame budget and verifies
// the total against targetFrames. The overlap budget becomes blend
// windows on adjacent scene boundaries and is deliberately excluded
// from all interval arithmetic.
func Assemble(budget types.TimelineBudget, fps, targetFrames int) (*Timeline, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("timeline: fps must be positive, got %d", fps)
	}
	if budget.IntroFrames <= 0 || budget.ProductFrames <= 0 || budget.OutroFrames <= 0 {
		return nil, fmt.Errorf("timeline: budget sections must be positive (%d/%d/%d)",
			budget.IntroFrames, budget.ProductFrames, budget.OutroFrames)
	}
	if budget.TransitionOverlap < 0 {
		return nil, fmt.Errorf("timeline: negative transition overlap %d", budget.TransitionOverlap)
	}

	total := budget.TotalFrames()
	if total != targetFrames {
		return nil, fmt.Errorf("%w: budget sums to %d frames, target is %d",
			ErrFrameBudget, total, targetFrames)
	}

	overlap := budget.TransitionOverlap
	maxBlend := budget.ProductFrames / 2
	if overlap > maxBlend {
		overlap = maxBlend
	}

	scenes := make([]Scene, 0, 7)
	cursor := 0

	push := func(kind SceneKind, rank, frames int) {
		scenes = append(scenes, Scene{
			Kind:  kind,
			Rank:  rank,
			Start: cursor,
			End:   cursor + frames,
		})
		cursor += frames
	}

	push(SceneIntro, 0, budget.IntroFrames)
	// Countdown order: largest rank number first, rank 1 saved for last.
	for rank := 5; rank >= 1; rank-- {
		push(SceneProduct, rank, budget.ProductFrames)
	}
	push(SceneOutro, 0, budget.OutroFrames)

	for i := range scenes {
		if i > 0 {
			scenes[i].BlendIn = overlap
		}
		if i < len(scenes)-1 {
			scenes[i].BlendOut = overlap
		}
	}

	if cursor != targetFrames {
		// Layout bug, not a data problem.
		return nil, fmt.Errorf("%w: laid out %d frames, target is %d",
			ErrFrameBudget, cursor, targetFrames)
	}

	return &Timeline{
		Scenes:      scenes,
		TotalFrames: cursor,
		FPS:         fps,
	}, nil
}

// SceneAt answers which scene and scene-local frame a global frame
// index falls in. The renderer walks this during playback and export.
func (t *Timeline) SceneAt(frame int) (Scene, int, bool) {
	if frame < 0 || frame >= t.TotalFrames {
		return Scene{}, 0, false
	}

	for _, s := range t.Scenes {
		if frame < s.End {
			return s, frame - s.Start, true
		}
	}
	return Scene{}, 0, false
}

// ProductScene returns the scene for a given product rank.
func (t *Timeline) ProductScene(rank int) (Scene, bool) {
	for _, s := range t.Scenes {
		if s.Kind == SceneProduct && s.Rank == rank {
			return s, true
		}
	}
	return Scene{}, false
}
