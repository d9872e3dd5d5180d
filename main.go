// Package main provides the entry point for the beadvoice CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beadforge/beadvoice/internal/catalog"
	"github.com/beadforge/beadvoice/internal/generator"
	"github.com/beadforge/beadvoice/internal/synth"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile  string
	languages   []string
	items       []string
	onlyCat     string
	noNumbers   bool
	noModifiers bool
	noEvents    bool
	maxNumber   int
	overwrite   bool
	engineName  string
	outDir      string
	dryRun      bool

	rootCmd = &cobra.Command{
		Use:   "beadvoice",
		Short: "Pre-render spoken audio clips for BeadForge",
		Long: paragraph(fmt.Sprintf(
			"\nGenerate the %s audio assets: color names, modifiers, numbers and event announcements, in every configured language. Files that already exist are skipped, so an interrupted run can simply be restarted.",
			keyword("BeadForge"),
		)),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

func validateOptions(_ *cobra.Command) error {
	// grab config values from Viper
	engineName = viper.GetString("engine")
	outDir = viper.GetString("out")
	maxNumber = viper.GetInt("max-number")
	overwrite = viper.GetBool("overwrite")

	if maxNumber < 1 || maxNumber > 999 {
		return fmt.Errorf("max-number must be between 1 and 999, got %d", maxNumber)
	}

	if onlyCat != "" && !catalog.Category(onlyCat).Valid() {
		return fmt.Errorf("unknown category %q (available: colors, modifiers, numbers, events)", onlyCat)
	}

	found := false
	for _, name := range synth.EngineNames() {
		if name == engineName {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q (available: gtts, edge, mock)", synth.ErrUnknownEngine, engineName)
	}

	return nil
}

// selectedCategories applies the --only shortcut and the exclusion toggles.
func selectedCategories() []catalog.Category {
	if onlyCat != "" {
		return []catalog.Category{catalog.Category(onlyCat)}
	}
	cats := []catalog.Category{catalog.Colors}
	if !noModifiers {
		cats = append(cats, catalog.Modifiers)
	}
	if !noNumbers {
		cats = append(cats, catalog.Numbers)
	}
	if !noEvents {
		cats = append(cats, catalog.Events)
	}
	return cats
}

func execute(*cobra.Command, []string) error {
	engine, err := synth.New(engineName, synth.Config{
		GTTS: synth.GTTSConfig{
			RequestsPerMinute: viper.GetInt("gtts.requests_per_minute"),
		},
	})
	if err != nil {
		return err
	}

	// A backend that cannot serve at all aborts the run before any work;
	// everything past this point is per-item and non-fatal.
	if !dryRun {
		if err := engine.Validate(); err != nil {
			return err
		}
	}

	gen := generator.New(generator.Config{
		Engine: engine,
		Root:   outDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := gen.GenerateAll(ctx, generator.Options{
		Languages:  languages,
		Categories: selectedCategories(),
		Items:      items,
		MaxNumber:  maxNumber,
		Overwrite:  overwrite,
		DryRun:     dryRun,
	})

	for cat, n := range stats.Written {
		log.Info("category complete", "category", cat, "written", n)
	}
	log.Info("sweep complete",
		"written", stats.TotalWritten(),
		"bytes", humanize.Bytes(uint64(stats.BytesWritten)),
		"skipped_existing", stats.SkippedExists,
		"skipped_missing", stats.SkippedMissing,
		"failed", stats.Failed,
	)

	if err != nil && errors.Is(err, context.Canceled) {
		log.Warn("interrupted; re-run to resume, existing files are kept")
	}
	return err
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringArrayVarP(&languages, "language", "l", nil, "language to generate, repeatable (default: all configured)")
	rootCmd.Flags().StringSliceVarP(&items, "items", "i", nil, "restrict colors/modifiers/events to these item keys")
	rootCmd.Flags().StringVar(&onlyCat, "only", "", "generate a single category (colors, modifiers, numbers, events)")
	rootCmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "skip the numbers subtree")
	rootCmd.Flags().BoolVar(&noModifiers, "no-modifiers", false, "skip color modifiers")
	rootCmd.Flags().BoolVar(&noEvents, "no-events", false, "skip event announcements")
	rootCmd.Flags().IntVar(&maxNumber, "max-number", generator.DefaultMaxNumber, "upper bound of the numbers subtree")
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, "regenerate targets even when the file exists")
	rootCmd.Flags().StringVarP(&engineName, "engine", "e", "gtts", "TTS engine (gtts, edge, mock)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "public", "root directory the audio/ tree is created under")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log planned work without synthesizing or writing")

	// Config bindings
	_ = viper.BindPFlag("engine", rootCmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("max-number", rootCmd.Flags().Lookup("max-number"))
	_ = viper.BindPFlag("overwrite", rootCmd.Flags().Lookup("overwrite"))

	viper.SetDefault("engine", "gtts")
	viper.SetDefault("out", "public")
	viper.SetDefault("max-number", generator.DefaultMaxNumber)
	viper.SetDefault("overwrite", false)
	viper.SetDefault("gtts.requests_per_minute", 50)

	rootCmd.AddCommand(listCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "beadvoice")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "beadvoice")}, dirs...)
	}

	if c := os.Getenv("BEADVOICE_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("beadvoice")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("beadvoice")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "beadvoice.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
