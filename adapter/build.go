package adapter

import (
	"fmt"
	"strings"

	"rankreel/normalize"
	"rankreel/types"
)

// Placeholder assets used when a rank is missing non-critical data.
// Substitution is a warning, not a failure: partial data should still
// produce a renderable video, and the schema validator decides later
// whether anything truly required is absent.
const (
	PlaceholderProductImage = "assets/placeholder_product.png"
	PlaceholderIntroImage   = "assets/placeholder_intro.png"
	PlaceholderOutroImage   = "assets/placeholder_outro.png"
	DefaultCurrency         = "USD"
	DefaultCTA              = "Links in the description below!"

	maxNameLen     = 60
	maxSubtitleLen = 90
)

// Warning flags a field that was substituted or dropped while adapting
// a record.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Result is the canonical material adapted from one source record.
// Products are ordered by descending rank (countdown order, rank 5
// first) regardless of the record's field order.
type Result struct {
	Intro    types.Intro
	Products []types.Product
	Outro    types.Outro
	Audio    *types.AudioTrack
	Warnings []Warning
}

// Build maps a flat rank-keyed record into five canonical products plus
// intro and outro material. It is fully deterministic: byte-identical
// records produce byte-identical results.
func Build(rec *SourceRecord) *Result {
	res := &Result{}

	for rank := 5; rank >= 1; rank-- {
		res.Products = append(res.Products, buildProduct(rec, rank, res))
	}

	res.Intro = buildIntro(rec, res)
	res.Outro = buildOutro(rec, res)

	voiceover := rec.VoiceoverURL()
	music := rec.BackgroundMusicURL()
	if !voiceover.IsZero() || !music.IsZero() {
		res.Audio = &types.AudioTrack{
			VoiceoverURL:  voiceover.String(),
			BackgroundURL: music.String(),
			DuckingLevel:  0.2,
		}
	}

	return res
}

func (r *Result) warnf(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func buildProduct(rec *SourceRecord, rank int, res *Result) types.Product {
	name := rec.Title(rank).String()
	if name == "" {
		name = fmt.Sprintf("Top Pick #%d", rank)
		res.warnf(fmt.Sprintf("title_%d", rank), "missing title, using placeholder")
	}
	name = truncate(name, maxNameLen)

	image := rec.Photo(rank).String()
	if image == "" {
		image = PlaceholderProductImage
		res.warnf(fmt.Sprintf("photo_%d", rank), "missing image, using placeholder asset")
	}

	audio := rec.Audio(rank).String()
	if audio == "" {
		res.warnf(fmt.Sprintf("audio_%d", rank), "missing narration audio")
	}

	price, ok := normalize.ParsePrice(rec.Price(rank))
	if !ok && !rec.Price(rank).IsZero() {
		res.warnf(fmt.Sprintf("price_%d", rank), "unparseable price %q, using 0", rec.Price(rank).String())
	}

	original, _ := normalize.ParsePrice(rec.OriginalPrice(rank))

	rating, ok := normalize.ParseRating(rec.Rating(rank))
	if !ok && !rec.Rating(rank).IsZero() {
		res.warnf(fmt.Sprintf("rating_%d", rank), "unparseable rating %q, using 0", rec.Rating(rank).String())
	}

	reviews, ok := normalize.ParseReviewCount(rec.Reviews(rank))
	if !ok && !rec.Reviews(rank).IsZero() {
		res.warnf(fmt.Sprintf("reviews_%d", rank), "unparseable review count %q, using 0", rec.Reviews(rank).String())
	}

	discount := normalize.DiscountPct(price, original)

	currency := strings.ToUpper(rec.Currency(rank).String())
	if len(currency) != 3 {
		currency = DefaultCurrency
	}

	kb, in, out, layout := VarietyFor(rank)

	return types.Product{
		Rank:          rank,
		Name:          name,
		Subtitle:      truncate(rec.Subtitle(rank).String(), maxSubtitleLen),
		ImageURL:      image,
		AudioURL:      audio,
		KenBurns:      kb,
		Rating:        rating,
		ReviewsCount:  reviews,
		Price:         price,
		Currency:      currency,
		DiscountPct:   discount,
		Badge:         BadgeFor(rank, reviews, rating, discount),
		FeatureChips:  ExtractChips(rec.Description(rank).String()),
		Layout:        layout,
		TransitionIn:  in,
		TransitionOut: out,
	}
}

func buildIntro(rec *SourceRecord, res *Result) types.Intro {
	title := rec.VideoTitle().String()
	if title == "" {
		title = "Top 5 Picks"
		res.warnf("video_title", "missing video title, using placeholder")
	}

	image := rec.IntroPhoto().String()
	if image == "" {
		image = PlaceholderIntroImage
		res.warnf("intro_photo", "missing intro image, using placeholder asset")
	}

	return types.Intro{
		ImageURL:   image,
		Title:      truncate(title, 80),
		Hook:       truncate(rec.Hook().String(), 160),
		AudioURL:   rec.IntroAudio().String(),
		Transition: types.TransitionFade,
	}
}

func buildOutro(rec *SourceRecord, res *Result) types.Outro {
	cta := rec.CTA().String()
	if cta == "" {
		cta = DefaultCTA
	}

	image := rec.OutroPhoto().String()
	if image == "" {
		image = PlaceholderOutroImage
		res.warnf("outro_photo", "missing outro image, using placeholder asset")
	}

	return types.Outro{
		ImageURL:   image,
		CTAText:    truncate(cta, 120),
		AudioURL:   rec.OutroAudio().String(),
		Transition: types.TransitionFade,
	}
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
