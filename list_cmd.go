package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beadforge/beadvoice/internal/catalog"
	"github.com/beadforge/beadvoice/internal/generator"
	"github.com/beadforge/beadvoice/internal/voice"
)

// The list commands print the catalog tables and exit. They never write to
// the filesystem.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the translation tables and voice registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var listColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List all color names with their translations",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		printTable(catalog.Colors)
	},
}

var listModifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "List all color modifiers with their translations",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		printTable(catalog.Modifiers)
	},
}

var listEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List all event announcement phrases",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		printTable(catalog.Events)
	},
}

var listNumbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "List the spoken numeral words",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for n := 1; n <= maxNumber; n++ {
			fmt.Fprintf(w, "%d", n)
			for _, lang := range voice.Languages() {
				fmt.Fprintf(w, "\t%s=%q", lang, catalog.NumberText(n, lang))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
	},
}

var listVoicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the configured voices per language",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, lang := range voice.Languages() {
			vc, _ := voice.ForLanguage(lang)
			fmt.Fprintf(w, "%s\tfolder=%s\ttld=%s\tedge=%s\n", lang, vc.Folder, vc.TLD, vc.EdgeVoice)
		}
		w.Flush()
	},
}

// printTable renders one catalog table, one item per line.
func printTable(cat catalog.Category) {
	gen := generator.New(generator.Config{})
	table, _ := catalog.Lookup(cat)
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, entry := range gen.List(cat) {
		fmt.Fprintf(w, "%s", entry.Key)
		for _, lang := range table.Languages(entry.Key) {
			fmt.Fprintf(w, "\t%s=%q", lang, entry.Translations[lang])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func init() {
	listCmd.AddCommand(listColorsCmd, listModifiersCmd, listEventsCmd, listNumbersCmd, listVoicesCmd)
}
