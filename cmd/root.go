package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/config"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/feed"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/search"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/ui"
)

var (
	cfgFile    string
	feedFiles  []string
	timezone   string
	facetFlags []string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gepcal",
	Short: "A terminal calendar for GEP training sessions",
	Long: `Gepcal is a terminal calendar over the GEP session and variant
feeds, with month, week and day views, fuzzy search and live reload.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringSliceVarP(&feedFiles, "file", "f", []string{}, "Feed file(s) to use (can be specified multiple times)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "Display timezone (overrides config)")
	rootCmd.PersistentFlags().StringArrayVar(&facetFlags, "facet", []string{}, "Facet filter key=value, value may be a|b (repeatable)")
}

func initConfig() {
	if cfgFile != "" {
		os.Setenv("GEPCAL_CONFIG", cfgFile)
	}

	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if timezone != "" {
		cfg.Timezone = timezone
	}
	if len(feedFiles) > 0 {
		cfg.FeedFiles = feedFiles
	}
}

func buildClock() (*civil.Clock, error) {
	clock, err := civil.NewClock(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bad timezone %q: %w", cfg.Timezone, err)
	}
	return clock, nil
}

func buildSource() feed.Source {
	return feed.NewFileSource(cfg.FeedFiles...)
}

func buildFacets() (search.Facets, error) {
	if len(facetFlags) == 0 {
		return nil, nil
	}
	facets := make(search.Facets, len(facetFlags))
	for _, f := range facetFlags {
		key, value, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("bad facet %q, want key=value", f)
		}
		facets[strings.TrimSpace(key)] = value
	}
	return facets, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	clock, err := buildClock()
	if err != nil {
		return err
	}

	facets, err := buildFacets()
	if err != nil {
		return err
	}

	model := ui.NewModel(cfg, buildSource(), clock, facets)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
