package composer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rankreel/config"
	"rankreel/types"
)

// fakeReporter records every status update it receives, in order.
type fakeReporter struct {
	updates []types.JobUpdate
	err     error
}

func (f *fakeReporter) Report(_ context.Context, u types.JobUpdate) error {
	f.updates = append(f.updates, u)
	return f.err
}

func (f *fakeReporter) statuses() []types.JobStatus {
	out := make([]types.JobStatus, len(f.updates))
	for i, u := range f.updates {
		out[i] = u.Status
	}
	return out
}

// fakeArtifacts stores specs in memory keyed by job id.
type fakeArtifacts struct {
	specs map[string]*types.VideoSpec
	err   error
}

func (f *fakeArtifacts) Put(_ context.Context, key string, spec *types.VideoSpec) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.specs == nil {
		f.specs = make(map[string]*types.VideoSpec)
	}
	f.specs[key] = spec
	return "mem://" + key, nil
}

func loadRecord(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "record.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

func TestComposeFullPipeline(t *testing.T) {
	reporter := &fakeReporter{}
	artifacts := &fakeArtifacts{}

	c, err := New(config.DefaultFormat(), artifacts, reporter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := c.Compose(context.Background(), "job-1", loadRecord(t))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if result.JobID != "job-1" {
		t.Errorf("job id = %q", result.JobID)
	}
	if result.Timeline.TotalFrames != 1650 {
		t.Errorf("total frames = %d, want 1650", result.Timeline.TotalFrames)
	}
	if len(result.Spec.Products) != 5 {
		t.Fatalf("product count = %d", len(result.Spec.Products))
	}

	// Products come out in countdown order.
	for i, want := range []int{5, 4, 3, 2, 1} {
		if got := result.Spec.Products[i].Rank; got != want {
			t.Errorf("product %d rank = %d, want %d", i, got, want)
		}
	}

	if result.OutputRef != "mem://job-1" {
		t.Errorf("output ref = %q", result.OutputRef)
	}
	if artifacts.specs["job-1"] != result.Spec {
		t.Error("artifact store did not receive the validated spec")
	}
	if got := result.Spec.Datasource.RowRef; got != "sheet-row-42" {
		t.Errorf("row ref = %q", got)
	}

	want := []types.JobStatus{types.StatusProcessing, types.StatusSuccess}
	if !reflect.DeepEqual(reporter.statuses(), want) {
		t.Errorf("status sequence = %v, want %v", reporter.statuses(), want)
	}
	final := reporter.updates[len(reporter.updates)-1]
	if final.OutputRef != "mem://job-1" {
		t.Errorf("final update output ref = %q", final.OutputRef)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	c, err := New(config.DefaultFormat(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw := loadRecord(t)
	a, err := c.Compose(context.Background(), "job-a", raw)
	if err != nil {
		t.Fatalf("first compose: %v", err)
	}
	b, err := c.Compose(context.Background(), "job-a", raw)
	if err != nil {
		t.Fatalf("second compose: %v", err)
	}

	if !reflect.DeepEqual(a.Spec, b.Spec) {
		t.Error("same record produced different specs")
	}
	if !reflect.DeepEqual(a.Timeline, b.Timeline) {
		t.Error("same record produced different timelines")
	}
}

func TestComposeSurfacesWarningsWithoutFailing(t *testing.T) {
	reporter := &fakeReporter{}
	c, err := New(config.DefaultFormat(), nil, reporter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// rank 2 title removed: the adapter substitutes a placeholder and
	// warns rather than failing the job.
	record := []byte(`{
		"title_1": "A", "photo_1": "https://x/1.jpg", "price_1": 10, "rating_1": 4, "reviews_1": 10,
		"photo_2": "https://x/2.jpg", "price_2": 10, "rating_2": 4, "reviews_2": 10,
		"title_3": "C", "photo_3": "https://x/3.jpg", "price_3": 10, "rating_3": 4, "reviews_3": 10,
		"title_4": "D", "photo_4": "https://x/4.jpg", "price_4": 10, "rating_4": 4, "reviews_4": 10,
		"title_5": "E", "photo_5": "https://x/5.jpg", "price_5": 10, "rating_5": 4, "reviews_5": 10
	}`)

	result, err := c.Compose(context.Background(), "job-2", record)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warnings for the missing title")
	}

	final := reporter.updates[len(reporter.updates)-1]
	if final.Status != types.StatusSuccess {
		t.Errorf("final status = %s, want success", final.Status)
	}
	if len(final.Warnings) == 0 {
		t.Error("warnings missing from final status update")
	}
}

func TestComposeReportsValidationFailure(t *testing.T) {
	reporter := &fakeReporter{}
	c, err := New(config.DefaultFormat(), nil, reporter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Not valid JSON for a record mapping.
	if _, err := c.Compose(context.Background(), "job-3", []byte(`[1, 2]`)); err == nil {
		t.Fatal("malformed record accepted")
	}
	final := reporter.updates[len(reporter.updates)-1]
	if final.Status != types.StatusFailed {
		t.Errorf("final status = %s, want failed", final.Status)
	}
	if len(final.Errors) == 0 {
		t.Error("failed update carries no error messages")
	}
}

func TestComposeRejectsInconsistentFormat(t *testing.T) {
	f := config.DefaultFormat()
	f.TotalFrames = 1651 // no longer matches the budget sum

	if _, err := New(f, nil); err == nil {
		t.Fatal("inconsistent format accepted")
	}
}

func TestComposeArtifactFailureFailsJob(t *testing.T) {
	reporter := &fakeReporter{}
	artifacts := &fakeArtifacts{err: errors.New("bucket gone")}

	c, err := New(config.DefaultFormat(), artifacts, reporter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Compose(context.Background(), "job-4", loadRecord(t)); err == nil {
		t.Fatal("artifact failure did not fail the job")
	}
	final := reporter.updates[len(reporter.updates)-1]
	if final.Status != types.StatusFailed {
		t.Errorf("final status = %s, want failed", final.Status)
	}
}

func TestComposeReporterErrorsAreBestEffort(t *testing.T) {
	broken := &fakeReporter{err: errors.New("redis down")}
	healthy := &fakeReporter{}

	c, err := New(config.DefaultFormat(), nil, broken, healthy, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := c.Compose(context.Background(), "job-5", loadRecord(t))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if result == nil || result.Timeline == nil {
		t.Fatal("result missing despite healthy pipeline")
	}

	// The healthy reporter still saw the full sequence.
	want := []types.JobStatus{types.StatusProcessing, types.StatusSuccess}
	if !reflect.DeepEqual(healthy.statuses(), want) {
		t.Errorf("healthy reporter saw %v, want %v", healthy.statuses(), want)
	}
}

func TestComposeSanitizesHostileFieldValues(t *testing.T) {
	// The adapter repairs everything it can before validation. A record
	// full of junk values still composes; nothing out of range survives
	// into the output.
	c, err := New(config.DefaultFormat(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := c.Compose(context.Background(), "job-6", []byte(`{
		"title_1": "A", "photo_1": "https://x/1.jpg",
		"rating_1": "11", "price_1": "-42", "currency": "DOLLARS",
		"title_2": "B", "photo_2": "https://x/2.jpg",
		"title_3": "C", "photo_3": "https://x/3.jpg",
		"title_4": "D", "photo_4": "https://x/4.jpg",
		"title_5": "E", "photo_5": "https://x/5.jpg"
	}`))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	var rank1 types.Product
	for _, p := range result.Spec.Products {
		if p.Rank == 1 {
			rank1 = p
		}
	}
	if rank1.Rating != 5 {
		t.Errorf("rating = %v, want clamp at 5", rank1.Rating)
	}
	if rank1.Price != 0 {
		t.Errorf("price = %v, want 0 for a negative input", rank1.Price)
	}
	if rank1.Currency != "USD" {
		t.Errorf("currency = %q, want USD fallback", rank1.Currency)
	}
}
