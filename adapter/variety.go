package adapter

import "rankreel/types"

// rankVariety fixes the visual treatment for each countdown rank. An
// ordered table rather than branching: the same rank always gets the
// same pan/zoom, transitions and layout, so visual variety is
// consistent video-to-video.
type rankVariety struct {
	KenBurns types.KenBurns
	In       types.Transition
	Out      types.Transition
	Layout   types.Layout
}

// varietyTable is indexed by rank-1.
var varietyTable = [5]rankVariety{
	{ // rank 1: the winner gets the slow push-in and full-bleed image
		KenBurns: types.KenBurns{StartScale: 1.0, EndScale: 1.18, PanX: 0, PanY: -0.05},
		In:       types.TransitionZoomIn,
		Out:      types.TransitionFade,
		Layout:   types.LayoutImageFull,
	},
	{ // rank 2
		KenBurns: types.KenBurns{StartScale: 1.12, EndScale: 1.0, PanX: 0.08, PanY: 0},
		In:       types.TransitionSlideLeft,
		Out:      types.TransitionWipeUp,
		Layout:   types.LayoutImageRight,
	},
	{ // rank 3
		KenBurns: types.KenBurns{StartScale: 1.0, EndScale: 1.1, PanX: -0.08, PanY: 0.04},
		In:       types.TransitionWipeUp,
		Out:      types.TransitionSlideLeft,
		Layout:   types.LayoutSplit,
	},
	{ // rank 4
		KenBurns: types.KenBurns{StartScale: 1.1, EndScale: 1.02, PanX: 0, PanY: 0.08},
		In:       types.TransitionSlideRight,
		Out:      types.TransitionFade,
		Layout:   types.LayoutImageLeft,
	},
	{ // rank 5: the opener
		KenBurns: types.KenBurns{StartScale: 1.05, EndScale: 1.15, PanX: 0.05, PanY: -0.03},
		In:       types.TransitionFade,
		Out:      types.TransitionWipeDown,
		Layout:   types.LayoutCard,
	},
}

// VarietyFor returns the fixed visual treatment for a rank in 1..5.
func VarietyFor(rank int) (types.KenBurns, types.Transition, types.Transition, types.Layout) {
	v := varietyTable[rank-1]
	return v.KenBurns, v.In, v.Out, v.Layout
}
