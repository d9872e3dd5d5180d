// Package generator performs the idempotent asset sweep: for every
// requested (category, item, language) triple it resolves the display text,
// computes the target path, and synthesizes a clip unless one already
// exists. Each item has an independent outcome; a failed item never aborts
// the run.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/beadforge/beadvoice/internal/catalog"
	"github.com/beadforge/beadvoice/internal/synth"
	"github.com/beadforge/beadvoice/internal/voice"
)

// Options selects what a sweep covers.
type Options struct {
	// Languages to generate. Empty means every configured language
	// (events still default to English only; see sweepLanguages).
	Languages []string

	// Categories to include. Empty means all.
	Categories []catalog.Category

	// Items restricts colors/modifiers/events to the given keys.
	// Empty means every key in the table.
	Items []string

	// MaxNumber is the upper bound of the numbers subtree (1..MaxNumber).
	MaxNumber int

	// Overwrite regenerates targets even when a file already exists.
	Overwrite bool

	// DryRun logs the planned work without synthesizing or writing.
	DryRun bool
}

// DefaultMaxNumber matches the bead-group counts the pattern viewer speaks.
const DefaultMaxNumber = 20

// Generator sweeps the catalog tables through a synthesis engine.
type Generator struct {
	engine synth.Engine
	root   string
	voices map[string]voice.Config
	tables map[catalog.Category]catalog.Table
	logger *log.Logger
}

// Config wires a Generator.
type Config struct {
	// Engine performs the synthesis calls. Required.
	Engine synth.Engine

	// Root is the directory the audio/ tree is created under.
	Root string

	// Voices overrides the static voice registry. Nil uses voice.All().
	Voices map[string]voice.Config

	// Tables overrides the catalog tables (tests inject reduced ones).
	// Nil uses the built-in tables.
	Tables map[catalog.Category]catalog.Table

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// New creates a Generator.
func New(cfg Config) *Generator {
	if cfg.Voices == nil {
		cfg.Voices = voice.All()
	}
	if cfg.Tables == nil {
		cfg.Tables = map[catalog.Category]catalog.Table{
			catalog.Colors:    catalog.ColorTable,
			catalog.Modifiers: catalog.ModifierTable,
			catalog.Events:    catalog.EventTable,
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Generator{
		engine: cfg.Engine,
		root:   cfg.Root,
		voices: cfg.Voices,
		tables: cfg.Tables,
		logger: cfg.Logger,
	}
}

// table returns the fixed table for cat, if there is one.
func (g *Generator) table(cat catalog.Category) (catalog.Table, bool) {
	t, ok := g.tables[cat]
	return t, ok
}

// Generate produces the clips for one item across languages. It returns the
// number of newly written files. Missing translations and voices are warned
// about and skipped; synthesis failures are logged and skipped. The only
// errors returned are context cancellation.
func (g *Generator) Generate(ctx context.Context, cat catalog.Category, key string, langs []string, overwrite bool) (int, error) {
	key = fileNameBase(key)
	table, ok := g.table(cat)
	if cat == catalog.Numbers {
		table, ok = catalog.NumberTable(DefaultMaxNumber, langs), true
	}
	if !ok {
		g.logger.Warn("unknown category", "category", cat)
		return 0, nil
	}
	if _, ok := table[key]; !ok {
		g.logger.Warn("no translations for item", "category", cat, "item", key)
		return 0, nil
	}

	written := 0
	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		outcome, _, err := g.generateOne(ctx, cat, table, key, lang, overwrite, false)
		if err != nil {
			return written, err
		}
		if outcome == OutcomeWritten {
			written++
		}
	}
	return written, nil
}

// generateOne handles a single (category, item, language) triple and
// reports its outcome plus the bytes written. The returned error is non-nil
// only for context cancellation.
func (g *Generator) generateOne(ctx context.Context, cat catalog.Category, table catalog.Table, key, lang string, overwrite, dryRun bool) (Outcome, int64, error) {
	vc, ok := g.voices[lang]
	if !ok {
		g.logger.Warn("no voice configured for language", "lang", lang)
		return OutcomeSkippedMissing, 0, nil
	}

	text, ok := table.Text(key, lang)
	if !ok {
		g.logger.Warn("no translation", "category", cat, "item", key, "lang", lang)
		return OutcomeSkippedMissing, 0, nil
	}

	target := g.OutputPath(cat, key, vc)
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			g.logger.Debug("skip, already exists", "path", target)
			return OutcomeSkippedExists, 0, nil
		}
	}

	if dryRun {
		g.logger.Info("would generate", "path", target, "text", text)
		return OutcomeWritten, 0, nil
	}

	g.logger.Info("generating", "path", target, "text", text)

	data, err := g.engine.Synthesize(ctx, synth.Request{
		Text:     text,
		Language: lang,
		Voice:    vc.EdgeVoice,
		TLD:      vc.TLD,
	})
	if err != nil {
		if ctx.Err() != nil {
			return OutcomeFailed, 0, ctx.Err()
		}
		g.logger.Error("synthesis failed", "category", cat, "item", key, "lang", lang, "err", err)
		return OutcomeFailed, 0, nil
	}

	if err := writeFileAtomic(target, data); err != nil {
		g.logger.Error("write failed", "path", target, "err", err)
		return OutcomeFailed, 0, nil
	}
	return OutcomeWritten, int64(len(data)), nil
}

// GenerateAll sweeps every selected category. The sweep is sequential and
// per-item failures are absorbed into the stats; the returned error is
// non-nil only when ctx is cancelled, and the stats cover the work done up
// to that point.
func (g *Generator) GenerateAll(ctx context.Context, opts Options) (Stats, error) {
	stats := NewStats()

	cats := opts.Categories
	if len(cats) == 0 {
		cats = catalog.Categories()
	}
	if opts.MaxNumber <= 0 {
		opts.MaxNumber = DefaultMaxNumber
	}

	for _, cat := range cats {
		langs := g.sweepLanguages(cat, opts.Languages)

		table, ok := g.table(cat)
		if cat == catalog.Numbers {
			table, ok = catalog.NumberTable(opts.MaxNumber, langs), true
		}
		if !ok {
			g.logger.Warn("unknown category", "category", cat)
			continue
		}

		keys := table.Keys()
		if cat != catalog.Numbers && len(opts.Items) > 0 {
			keys = intersect(keys, opts.Items)
		}

		for _, key := range keys {
			for _, lang := range langs {
				if err := ctx.Err(); err != nil {
					return stats, err
				}
				outcome, n, err := g.generateOne(ctx, cat, table, key, lang, opts.Overwrite, opts.DryRun)
				if err != nil {
					return stats, err
				}
				stats.Record(cat, outcome, n)
			}
		}
	}
	return stats, nil
}

// sweepLanguages resolves the effective language set for a category.
// Events default to English unless languages were selected explicitly.
func (g *Generator) sweepLanguages(cat catalog.Category, selected []string) []string {
	if len(selected) > 0 {
		return selected
	}
	if cat == catalog.Events {
		return []string{catalog.DefaultEventLanguage}
	}
	return voice.Languages()
}

// OutputPath computes the deterministic target path for one triple.
func (g *Generator) OutputPath(cat catalog.Category, key string, vc voice.Config) string {
	name := fileName(key)
	switch cat {
	case catalog.Events:
		return filepath.Join(g.root, "audio", "events", vc.Language, name)
	case catalog.Numbers:
		return filepath.Join(g.root, "audio", "tts", vc.Language, vc.Folder, "numbers", name)
	default:
		return filepath.Join(g.root, "audio", "tts", vc.Language, vc.Folder, name)
	}
}

// List returns the entries of a fixed category for inspection. It never
// touches the filesystem.
func (g *Generator) List(cat catalog.Category) []Entry {
	table, ok := g.table(cat)
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(table))
	for _, key := range table.Keys() {
		entries = append(entries, Entry{Key: key, Translations: table[key]})
	}
	return entries
}

// Entry is one catalog item with its translations.
type Entry struct {
	Key          string
	Translations map[string]string
}

// writeFileAtomic writes data via a temp file and rename so an interrupted
// run never leaves a truncated clip behind to satisfy the exists check.
func writeFileAtomic(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".beadvoice-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write clip: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move clip into place: %w", err)
	}
	return nil
}

// intersect keeps the keys that appear in the requested subset,
// preserving table order.
func intersect(keys, subset []string) []string {
	want := make(map[string]struct{}, len(subset))
	for _, s := range subset {
		want[fileNameBase(s)] = struct{}{}
	}
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := want[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
