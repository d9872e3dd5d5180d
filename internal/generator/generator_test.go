package generator

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/beadforge/beadvoice/internal/catalog"
	"github.com/beadforge/beadvoice/internal/synth"
	"github.com/beadforge/beadvoice/internal/voice"
)

func newTestGenerator(t *testing.T, engine synth.Engine, tables map[catalog.Category]catalog.Table) (*Generator, string) {
	t.Helper()
	root := t.TempDir()
	g := New(Config{
		Engine: engine,
		Root:   root,
		Tables: tables,
		Logger: log.New(io.Discard),
	})
	return g, root
}

// listFiles returns every regular file under root, relative to it.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("walk failed: %v", err)
	}
	return files
}

// TestGenerateIdempotent runs the same item twice: the second pass must not
// touch the backend.
func TestGenerateIdempotent(t *testing.T) {
	engine := synth.NewMock()
	g, _ := newTestGenerator(t, engine, nil)

	n, err := g.Generate(context.Background(), catalog.Colors, "red", []string{"ru"}, false)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("first run wrote %d files, want 1", n)
	}

	n, err = g.Generate(context.Background(), catalog.Colors, "red", []string{"ru"}, false)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second run wrote %d files, want 0", n)
	}
	if engine.CallCount() != 1 {
		t.Errorf("backend called %d times, want 1", engine.CallCount())
	}
}

// TestGenerateRedRussian pins the documented end-to-end layout: one file
// under ru/female-default, nothing for the unselected languages.
func TestGenerateRedRussian(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	if _, err := g.Generate(context.Background(), catalog.Colors, "red", []string{"ru"}, false); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{"audio/tts/ru/female-default/red.mp3"}
	got := listFiles(t, root)
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("files = %v, want %v", got, want)
	}

	reqs := engine.Requests()
	if len(reqs) != 1 || reqs[0].Text != "красный" {
		t.Errorf("synthesized %v, want the Russian translation", reqs)
	}
}

// TestGenerateUppercaseKey checks that item keys are lower-cased before
// path construction.
func TestGenerateUppercaseKey(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	if _, err := g.Generate(context.Background(), catalog.Colors, "Red", []string{"en"}, false); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "audio", "tts", "en", "female-default", "red.mp3")); err != nil {
		t.Errorf("expected lower-cased file name: %v", err)
	}
}

// TestGenerateMissingTranslation: an item without a language entry skips
// that pair only and the run completes.
func TestGenerateMissingTranslation(t *testing.T) {
	engine := synth.NewMock()
	tables := map[catalog.Category]catalog.Table{
		catalog.Colors: {"coral": {"en": "coral"}},
	}
	g, root := newTestGenerator(t, engine, tables)

	n, err := g.Generate(context.Background(), catalog.Colors, "coral", []string{"uk", "en"}, false)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d files, want 1 (uk pair skipped)", n)
	}
	for _, f := range listFiles(t, root) {
		if filepath.ToSlash(f) == "audio/tts/uk/female-default/coral.mp3" {
			t.Error("uk file should not have been attempted")
		}
	}
}

// TestGenerateMissingVoice: a language without a voice configuration
// produces zero files across all categories.
func TestGenerateMissingVoice(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	stats, err := g.GenerateAll(context.Background(), Options{Languages: []string{"de"}, MaxNumber: 3})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if stats.TotalWritten() != 0 {
		t.Errorf("wrote %d files for an unconfigured language", stats.TotalWritten())
	}
	if engine.CallCount() != 0 {
		t.Errorf("backend called %d times, want 0", engine.CallCount())
	}
	if files := listFiles(t, root); len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
	if stats.SkippedMissing == 0 {
		t.Error("expected skipped-missing outcomes to be recorded")
	}
}

// TestOverwriteResynthesizes: overwrite=true always re-invokes the backend.
func TestOverwriteResynthesizes(t *testing.T) {
	engine := synth.NewMock()
	g, _ := newTestGenerator(t, engine, nil)

	for i := 0; i < 2; i++ {
		n, err := g.Generate(context.Background(), catalog.Colors, "blue", []string{"en"}, true)
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if n != 1 {
			t.Errorf("run %d wrote %d files, want 1", i, n)
		}
	}
	if engine.CallCount() != 2 {
		t.Errorf("backend called %d times, want 2", engine.CallCount())
	}
}

// TestNumbersSubtree: max=5 for one language produces exactly five files,
// all under the numbers directory.
func TestNumbersSubtree(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	stats, err := g.GenerateAll(context.Background(), Options{
		Languages:  []string{"en"},
		Categories: []catalog.Category{catalog.Numbers},
		MaxNumber:  5,
	})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if got := stats.Written[catalog.Numbers]; got != 5 {
		t.Errorf("wrote %d number clips, want 5", got)
	}

	files := listFiles(t, root)
	if len(files) != 5 {
		t.Fatalf("files = %v, want exactly 5", files)
	}
	for _, f := range files {
		if filepath.Dir(f) != "audio/tts/en/female-default/numbers" {
			t.Errorf("file %s outside the numbers subtree", f)
		}
	}

	// Small counts are spoken as words, not digits.
	for _, req := range engine.Requests() {
		if req.Text == "3" {
			t.Error("number 3 synthesized as digits, want the numeral word")
		}
	}
}

// TestEventsDefaultLanguage: with no explicit selection, events render in
// English only; an explicit selection applies to events like anything else.
func TestEventsDefaultLanguage(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	if _, err := g.GenerateAll(context.Background(), Options{Categories: []catalog.Category{catalog.Events}}); err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	for _, f := range listFiles(t, root) {
		if filepath.Dir(f) != "audio/events/en" {
			t.Errorf("file %s outside audio/events/en", f)
		}
	}

	engine2 := synth.NewMock()
	g2, root2 := newTestGenerator(t, engine2, nil)
	if _, err := g2.GenerateAll(context.Background(), Options{
		Languages:  []string{"ru"},
		Categories: []catalog.Category{catalog.Events},
	}); err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root2, "audio", "events", "ru", "attention.mp3")); err != nil {
		t.Errorf("explicit ru selection should produce Russian events: %v", err)
	}
}

// TestSynthesisFailureContinues: a failing backend is logged per item and
// the sweep finishes without an error.
func TestSynthesisFailureContinues(t *testing.T) {
	engine := synth.NewMock()
	engine.FailWith(errors.New("network down"))
	tables := map[catalog.Category]catalog.Table{
		catalog.Colors: {
			"red":  {"en": "red"},
			"blue": {"en": "blue"},
		},
	}
	g, root := newTestGenerator(t, engine, tables)

	stats, err := g.GenerateAll(context.Background(), Options{
		Languages:  []string{"en"},
		Categories: []catalog.Category{catalog.Colors},
	})
	if err != nil {
		t.Fatalf("GenerateAll should absorb synthesis failures, got %v", err)
	}
	if stats.Failed != 2 {
		t.Errorf("stats.Failed = %d, want 2", stats.Failed)
	}
	if files := listFiles(t, root); len(files) != 0 {
		t.Errorf("files = %v, want none after failures", files)
	}
}

// TestDryRunWritesNothing: dry-run plans without touching the backend or
// the filesystem.
func TestDryRunWritesNothing(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	stats, err := g.GenerateAll(context.Background(), Options{
		Languages:  []string{"en"},
		Categories: []catalog.Category{catalog.Colors},
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if stats.TotalWritten() == 0 {
		t.Error("dry run should report planned work")
	}
	if engine.CallCount() != 0 {
		t.Errorf("backend called %d times during dry run", engine.CallCount())
	}
	if files := listFiles(t, root); len(files) != 0 {
		t.Errorf("files = %v, want none during dry run", files)
	}
}

// TestItemsSubset restricts the sweep to the requested keys.
func TestItemsSubset(t *testing.T) {
	engine := synth.NewMock()
	g, root := newTestGenerator(t, engine, nil)

	stats, err := g.GenerateAll(context.Background(), Options{
		Languages:  []string{"en"},
		Categories: []catalog.Category{catalog.Colors},
		Items:      []string{"Red", "blue"},
	})
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if stats.Written[catalog.Colors] != 2 {
		t.Errorf("wrote %d clips, want 2", stats.Written[catalog.Colors])
	}
	files := listFiles(t, root)
	if len(files) != 2 {
		t.Errorf("files = %v, want red.mp3 and blue.mp3 only", files)
	}
}

// TestCancellation stops the sweep between items and keeps what was done.
func TestCancellation(t *testing.T) {
	engine := synth.NewMock()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newTestGenerator(t, engine, nil)
	_, err := g.GenerateAll(ctx, Options{Languages: []string{"en"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if engine.CallCount() != 0 {
		t.Errorf("backend called %d times after cancellation", engine.CallCount())
	}
}

// TestListNoWrites: listing is read-only.
func TestListNoWrites(t *testing.T) {
	g, root := newTestGenerator(t, synth.NewMock(), nil)

	entries := g.List(catalog.Colors)
	if len(entries) != len(catalog.ColorTable) {
		t.Errorf("List returned %d entries, want %d", len(entries), len(catalog.ColorTable))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			t.Errorf("entries not sorted at %d: %q >= %q", i, entries[i-1].Key, entries[i].Key)
		}
	}
	if files := listFiles(t, root); len(files) != 0 {
		t.Errorf("List wrote files: %v", files)
	}
}

func TestOutputPath(t *testing.T) {
	g := New(Config{Root: "public", Logger: log.New(io.Discard)})
	vc, _ := voice.ForLanguage("ru")

	tests := []struct {
		cat  catalog.Category
		key  string
		want string
	}{
		{catalog.Colors, "red", "public/audio/tts/ru/female-default/red.mp3"},
		{catalog.Modifiers, "light", "public/audio/tts/ru/female-default/light.mp3"},
		{catalog.Numbers, "7", "public/audio/tts/ru/female-default/numbers/7.mp3"},
		{catalog.Events, "attention", "public/audio/events/ru/attention.mp3"},
	}
	for _, tt := range tests {
		if got := filepath.ToSlash(g.OutputPath(tt.cat, tt.key, vc)); got != tt.want {
			t.Errorf("OutputPath(%s, %s) = %q, want %q", tt.cat, tt.key, got, tt.want)
		}
	}
}
