package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/parser"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/schedule"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/search"
)

var (
	listDate  string
	listView  string
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events for a date range and exit",
	Long: `List events in a simple text format and exit. The range follows the
selected view: the day itself, its week, or its month.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDate, "date", "today", "Reference date (2024-06-15, 15/6, +2w, mañana)")
	listCmd.Flags().StringVar(&listView, "view", "day", "Range to list: month, week or day")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Fuzzy query to filter events")
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	clock, err := buildClock()
	if err != nil {
		return err
	}

	view, err := schedule.ParseView(listView)
	if err != nil {
		return err
	}

	refDate, err := parser.NewDateParser(clock.Today()).Parse(listDate)
	if err != nil {
		return fmt.Errorf("bad date %q: %w", listDate, err)
	}

	facets, err := buildFacets()
	if err != nil {
		return err
	}

	r := schedule.Compute(view, refDate)
	source := buildSource()
	defer source.Close()

	events, err := source.Events(
		clock.DayStart(civil.FromJulian(r.LabelStart)),
		clock.DayStart(civil.FromJulian(r.LabelEnd)),
	)
	if err != nil {
		return fmt.Errorf("error getting events: %w", err)
	}

	if listQuery != "" || len(facets) > 0 {
		events = search.Filter(search.BuildRows(events), facets, listQuery)
	}

	indexer := schedule.NewIndexer(clock, schedule.FullDay)
	buckets := indexer.BucketByDay(events)

	printed := 0
	for j := r.LabelStart; j < r.LabelEnd; j++ {
		day := civil.FromJulian(j)
		entries := indexer.Day(day, buckets[j])
		if len(entries) == 0 {
			continue
		}

		fmt.Printf("%s:\n", dayLabel(clock, day, cfg.DateFormat))
		for _, e := range entries {
			span := fmt.Sprintf("%02d:%02d-%02d:%02d",
				e.StartMinutes/60, e.StartMinutes%60,
				e.EndMinutes/60, e.EndMinutes%60)
			cont := ""
			if e.ContinuesBefore {
				cont = "« "
			}
			if e.ContinuesAfter {
				cont += "»"
			}
			fmt.Printf("  %s  %s%s [%s]\n", span, cont, e.Event.Title, e.Event.Kind)
			printed++
		}
	}

	if printed == 0 {
		fmt.Println("No events found.")
	}
	return nil
}

// dayLabel formats a civil day header. DayStart is a UTC instant, so
// it must be rendered back in the display timezone or positive-offset
// zones would show the previous calendar day.
func dayLabel(clock *civil.Clock, day civil.Date, format string) string {
	return clock.DayStart(day).In(clock.Location()).Format(format)
}
