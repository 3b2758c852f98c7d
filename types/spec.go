package types

// Badge is a categorical promotional label derived from rating, review
// and discount thresholds. Empty means no badge.
type Badge string

const (
	BadgeNone         Badge = ""
	BadgeBestSeller   Badge = "BEST_SELLER"
	BadgeTopRated     Badge = "TOP_RATED"
	BadgeAmazonChoice Badge = "AMAZON_CHOICE"
	BadgeLimitedDeal  Badge = "LIMITED_DEAL"
)

// Layout selects how a product scene arranges image and copy.
type Layout string

const (
	LayoutImageLeft  Layout = "image_left"
	LayoutImageRight Layout = "image_right"
	LayoutImageFull  Layout = "image_full"
	LayoutSplit      Layout = "split"
	LayoutCard       Layout = "card"
)

// Transition identifies a scene entrance or exit style.
type Transition string

const (
	TransitionFade       Transition = "fade"
	TransitionSlideLeft  Transition = "slide_left"
	TransitionSlideRight Transition = "slide_right"
	TransitionZoomIn     Transition = "zoom_in"
	TransitionWipeUp     Transition = "wipe_up"
	TransitionWipeDown   Transition = "wipe_down"
)

// KenBurns describes the slow pan/zoom applied to a scene's still
// background over its duration. Pan values are fractions of the canvas
// dimension in [-1, 1].
type KenBurns struct {
	StartScale float64 `json:"start_scale" validate:"gte=1"`
	EndScale   float64 `json:"end_scale" validate:"gte=1"`
	PanX       float64 `json:"pan_x" validate:"gte=-1,lte=1"`
	PanY       float64 `json:"pan_y" validate:"gte=-1,lte=1"`
}

// Meta carries the canvas and brand parameters for one video.
type Meta struct {
	FPS            int    `json:"fps" validate:"required,min=1,max=120"`
	Width          int    `json:"width" validate:"required,min=16"`
	Height         int    `json:"height" validate:"required,min=16"`
	MaxTotalFrames int    `json:"max_total_frames" validate:"required,min=1"`
	BrandTag       string `json:"brand_tag,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
}

// TimelineBudget is the per-section frame allowance. ProductFrames
// applies uniformly to all five product scenes. TransitionOverlap is a
// cross-fade blending window only; it never changes scene lengths or
// the total frame count.
type TimelineBudget struct {
	IntroFrames       int `json:"intro_frames" validate:"required,min=1"`
	ProductFrames     int `json:"product_frames" validate:"required,min=1"`
	OutroFrames       int `json:"outro_frames" validate:"required,min=1"`
	TransitionOverlap int `json:"transition_overlap" validate:"min=0"`
}

// TotalFrames is the visible frame count implied by the budget.
func (b TimelineBudget) TotalFrames() int {
	return b.IntroFrames + 5*b.ProductFrames + b.OutroFrames
}

// SafeMargins keeps text inside platform-safe screen regions, in pixels.
type SafeMargins struct {
	Top    int `json:"top" validate:"min=0"`
	Bottom int `json:"bottom" validate:"min=0"`
	Left   int `json:"left" validate:"min=0"`
	Right  int `json:"right" validate:"min=0"`
}

// AudioTrack references the voiceover and background music for a video.
// DuckingLevel is the background gain applied while voiceover plays.
type AudioTrack struct {
	VoiceoverURL  string  `json:"voiceover_url,omitempty"`
	BackgroundURL string  `json:"background_url,omitempty"`
	DuckingLevel  float64 `json:"ducking_level" validate:"gte=0,lte=1"`
}

// WordTiming is an optional word-level reveal timestamp inside a caption.
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start" validate:"gte=0"`
	End   float64 `json:"end" validate:"gte=0"`
}

// Caption is one subtitle line with its display interval, in seconds
// local to the owning scene.
type Caption struct {
	Text  string       `json:"text" validate:"required"`
	Start float64      `json:"start" validate:"gte=0"`
	End   float64      `json:"end" validate:"gte=0"`
	Words []WordTiming `json:"words,omitempty" validate:"omitempty,dive"`
}

// Intro opens the video with the hook and channel branding.
type Intro struct {
	ImageURL   string     `json:"image_url" validate:"required"`
	Title      string     `json:"title" validate:"required,max=80"`
	Hook       string     `json:"hook,omitempty" validate:"max=160"`
	AudioURL   string     `json:"audio_url,omitempty"`
	Captions   []Caption  `json:"captions,omitempty" validate:"omitempty,dive"`
	Transition Transition `json:"transition,omitempty"`
}

// Outro closes the video with a call to action.
type Outro struct {
	ImageURL   string     `json:"image_url" validate:"required"`
	CTAText    string     `json:"cta_text" validate:"required,max=120"`
	AudioURL   string     `json:"audio_url,omitempty"`
	Captions   []Caption  `json:"captions,omitempty" validate:"omitempty,dive"`
	Transition Transition `json:"transition,omitempty"`
}

// Product is one ranked countdown entry. Rank 1 is the best product and
// is shown last.
type Product struct {
	Rank          int        `json:"rank" validate:"required,min=1,max=5"`
	Name          string     `json:"name" validate:"required,max=60"`
	Subtitle      string     `json:"subtitle,omitempty" validate:"max=90"`
	ImageURL      string     `json:"image_url" validate:"required"`
	AudioURL      string     `json:"audio_url,omitempty"`
	KenBurns      KenBurns   `json:"ken_burns"`
	Rating        float64    `json:"rating" validate:"gte=0,lte=5"`
	ReviewsCount  int        `json:"reviews_count" validate:"gte=0"`
	Price         float64    `json:"price" validate:"gte=0"`
	Currency      string     `json:"currency" validate:"required,len=3"`
	DiscountPct   int        `json:"discount_pct" validate:"gte=0,lte=100"`
	Badge         Badge      `json:"badge,omitempty"`
	FeatureChips  []string   `json:"feature_chips,omitempty" validate:"max=4"`
	Layout        Layout     `json:"layout" validate:"required"`
	TransitionIn  Transition `json:"transition_in" validate:"required"`
	TransitionOut Transition `json:"transition_out" validate:"required"`
}

// Overlay is a persistent on-screen element shown across scenes,
// bounded by absolute frame indices.
type Overlay struct {
	Kind       string `json:"kind" validate:"required"`
	Text       string `json:"text,omitempty"`
	StartFrame int    `json:"start_frame" validate:"gte=0"`
	EndFrame   int    `json:"end_frame" validate:"gte=0"`
}

// Datasource records where this video's input row came from, for
// traceability only. Nothing in this module re-fetches it.
type Datasource struct {
	Provider string `json:"provider,omitempty"`
	SheetID  string `json:"sheet_id,omitempty"`
	RowRef   string `json:"row_ref,omitempty"`
}

// VideoSpec is the fully validated, immutable description of one
// countdown video. It is constructed once per job and never mutated
// after validation succeeds; any change requires re-running
// normalization and re-validating.
type VideoSpec struct {
	Meta        Meta           `json:"meta" validate:"required"`
	Timeline    TimelineBudget `json:"timeline" validate:"required"`
	SafeMargins *SafeMargins   `json:"safe_margins,omitempty"`
	Audio       *AudioTrack    `json:"audio,omitempty"`
	Intro       Intro          `json:"intro" validate:"required"`
	Products    []Product      `json:"products" validate:"required,len=5,dive"`
	Outro       Outro          `json:"outro" validate:"required"`
	Overlays    []Overlay      `json:"overlays,omitempty" validate:"omitempty,dive"`
	Datasource  *Datasource    `json:"datasource,omitempty"`
}
