package adapter

import (
	"encoding/json"
	"fmt"

	"rankreel/normalize"
)

// SourceRecord is one flat row from the external datastore: per-rank
// fields keyed by rank-suffixed names plus top-level intro/outro
// references. The decoder is permissive: unknown fields are kept but
// ignored, and every value goes through the Flexible boundary scalar so
// string/number inconsistencies stop here.
type SourceRecord struct {
	fields map[string]normalize.Flexible
}

// UnmarshalJSON decodes the record as a loose field-to-value mapping.
func (r *SourceRecord) UnmarshalJSON(data []byte) error {
	fields := make(map[string]normalize.Flexible)
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode source record: %w", err)
	}
	r.fields = fields
	return nil
}

// Set stores a field value, mainly for tests and programmatic records.
func (r *SourceRecord) Set(key, value string) {
	if r.fields == nil {
		r.fields = make(map[string]normalize.Flexible)
	}
	r.fields[key] = normalize.FlexibleFrom(value)
}

// field returns the first present value among the given key candidates.
// External sheets are inconsistent about column naming, so lookups try
// a small priority list the same way selector extraction does for DOM
// metadata.
func (r *SourceRecord) field(keys ...string) normalize.Flexible {
	for _, k := range keys {
		if v, ok := r.fields[k]; ok && !v.IsZero() {
			return v
		}
	}
	return normalize.Flexible{}
}

// rankField resolves a per-rank column, trying "title_3", "title3" and
// "product_3_title" spellings in that order.
func (r *SourceRecord) rankField(name string, rank int) normalize.Flexible {
	return r.field(
		fmt.Sprintf("%s_%d", name, rank),
		fmt.Sprintf("%s%d", name, rank),
		fmt.Sprintf("product_%d_%s", rank, name),
	)
}

func (r *SourceRecord) Title(rank int) normalize.Flexible { return r.rankField("title", rank) }
func (r *SourceRecord) Subtitle(rank int) normalize.Flexible {
	return r.rankField("subtitle", rank)
}
func (r *SourceRecord) Price(rank int) normalize.Flexible { return r.rankField("price", rank) }
func (r *SourceRecord) OriginalPrice(rank int) normalize.Flexible {
	return r.rankField("original_price", rank)
}
func (r *SourceRecord) Rating(rank int) normalize.Flexible { return r.rankField("rating", rank) }
func (r *SourceRecord) Reviews(rank int) normalize.Flexible {
	return r.field(
		fmt.Sprintf("reviews_%d", rank),
		fmt.Sprintf("reviews%d", rank),
		fmt.Sprintf("review_count_%d", rank),
		fmt.Sprintf("product_%d_reviews", rank),
	)
}
func (r *SourceRecord) Photo(rank int) normalize.Flexible {
	return r.field(
		fmt.Sprintf("photo_%d", rank),
		fmt.Sprintf("photo%d", rank),
		fmt.Sprintf("image_%d", rank),
		fmt.Sprintf("product_%d_photo", rank),
	)
}
func (r *SourceRecord) Audio(rank int) normalize.Flexible { return r.rankField("audio", rank) }
func (r *SourceRecord) Description(rank int) normalize.Flexible {
	return r.rankField("description", rank)
}
func (r *SourceRecord) Currency(rank int) normalize.Flexible {
	return r.field(
		fmt.Sprintf("currency_%d", rank),
		"currency",
	)
}

func (r *SourceRecord) VideoTitle() normalize.Flexible {
	return r.field("video_title", "title", "topic")
}
func (r *SourceRecord) Hook() normalize.Flexible       { return r.field("hook", "intro_hook") }
func (r *SourceRecord) CTA() normalize.Flexible        { return r.field("cta", "outro_cta") }
func (r *SourceRecord) IntroPhoto() normalize.Flexible { return r.field("intro_photo", "intro_image") }
func (r *SourceRecord) IntroAudio() normalize.Flexible { return r.field("intro_audio") }
func (r *SourceRecord) OutroPhoto() normalize.Flexible { return r.field("outro_photo", "outro_image") }
func (r *SourceRecord) OutroAudio() normalize.Flexible { return r.field("outro_audio") }
func (r *SourceRecord) VoiceoverURL() normalize.Flexible {
	return r.field("voiceover", "voiceover_url")
}
func (r *SourceRecord) BackgroundMusicURL() normalize.Flexible {
	return r.field("background_music", "music_url")
}
func (r *SourceRecord) RowRef() normalize.Flexible { return r.field("row_ref", "row_id", "id") }
