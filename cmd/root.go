package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/wrydhan/trackday/config"
	"github.com/wrydhan/trackday/core/roster"
	"github.com/wrydhan/trackday/core/timetable"
	"github.com/wrydhan/trackday/infra/logger"
	"github.com/wrydhan/trackday/pkg/export"
)

var (
	cfgPath string
	outPath string
	format  string
	seed    int64
)

var rootCmd = &cobra.Command{
	Use:   "trackday",
	Short: "Track day timetable generator",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "trackday.yaml", "configuration file")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or csv")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible random grouping (0 uses an unseeded source)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	event, err := cfg.EventConfig()
	if err != nil {
		return err
	}

	part := roster.Partitioner{}
	if seed != 0 {
		part.Rand = rand.New(rand.NewSource(seed))
	}
	groups := part.Partition(cfg.Participants(), event)
	tl := timetable.Build(event, groups.Labels())

	logg := logger.New("trackday")
	logg.Infof("generated %d activities for %d groups", len(tl), len(groups.Groups))

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logg.Errorf("close output: %v", cerr)
			}
		}()
		w = f
	}

	doc := export.Document{Groups: groups, Timeline: tl}
	switch format {
	case "json":
		return export.WriteJSON(w, doc)
	case "csv":
		return export.WriteCSV(w, tl)
	case "text":
		return export.WriteText(w, doc)
	}
	return fmt.Errorf("unknown format %q", format)
}
