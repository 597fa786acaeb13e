// Command techocc runs the full classification: it loads the three O*NET
// rating tables and the O*NET-to-NOC crosswalk, writes the classification
// table and the two PCA tables, and can optionally push the classification
// to ClickHouse or plot the component scores.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datamtl/techocc"
	"github.com/datamtl/techocc/pca"
)

var (
	cfgFile    string
	knowledge  string
	skills     string
	activities string
	crosswalk  string
	outDir     string
	plotScores bool

	chHost     string
	chUser     string
	chPassword string
	chTable    string
)

var rootCmd = &cobra.Command{
	Use:   "techocc",
	Short: "Classify NOC occupations as tech, digital or high-tech from O*NET ratings",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML config (defaults used when empty)")
	rootCmd.Flags().StringVar(&knowledge, "knowledge", "", "knowledge ratings CSV")
	rootCmd.Flags().StringVar(&skills, "skills", "", "skill ratings CSV")
	rootCmd.Flags().StringVar(&activities, "activities", "", "work-activity ratings CSV")
	rootCmd.Flags().StringVar(&crosswalk, "crosswalk", "", "O*NET-to-NOC crosswalk CSV")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	rootCmd.Flags().BoolVar(&plotScores, "plot", false, "write an HTML scatter of the first two component scores")

	rootCmd.Flags().StringVar(&chHost, "ch-host", "", "ClickHouse host; empty skips the DB sink")
	rootCmd.Flags().StringVar(&chUser, "ch-user", os.Getenv("user"), "ClickHouse user")
	rootCmd.Flags().StringVar(&chPassword, "ch-password", os.Getenv("password"), "ClickHouse password")
	rootCmd.Flags().StringVar(&chTable, "ch-table", "techocc.classification", "ClickHouse target table")

	for _, fl := range []string{"knowledge", "skills", "activities", "crosswalk"} {
		_ = rootCmd.MarkFlagRequired(fl)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg := techocc.DefaultConfig()
	if cfgFile != "" {
		var e error
		if cfg, e = techocc.LoadConfig(cfgFile); e != nil {
			return e
		}
	}

	var tables []techocc.RawTable
	for _, fn := range []string{knowledge, skills, activities} {
		tab, e := techocc.ReadRawTable(fn)
		if e != nil {
			return e
		}

		tables = append(tables, *tab)
	}

	xwalk, e := techocc.ReadCrosswalk(crosswalk)
	if e != nil {
		return e
	}

	pipe, e1 := techocc.NewPipeline(cfg)
	if e1 != nil {
		return e1
	}

	if e2 := pipe.Run(tables, xwalk); e2 != nil {
		return e2
	}

	log.Printf("classified %d occupations", len(pipe.Rows))

	outFile := filepath.Join(outDir, "tech_classification.csv")
	if e2 := techocc.SaveClassification(outFile, pipe.Rows, cfg); e2 != nil {
		return e2
	}

	res, e3 := pca.Decompose(pipe.Aggregated, cfg.Components)
	if e3 != nil {
		return e3
	}

	if e4 := res.SaveLoadings(filepath.Join(outDir, "pca_loadings.csv"), 0, true); e4 != nil {
		return e4
	}

	if e4 := res.SaveScores(filepath.Join(outDir, "pca_scores.csv")); e4 != nil {
		return e4
	}

	if plotScores {
		if e4 := res.Plot(filepath.Join(outDir, "pca_scores.html")); e4 != nil {
			return e4
		}
	}

	if chHost != "" {
		db, e4 := techocc.NewConnect(chHost, chUser, chPassword)
		if e4 != nil {
			return e4
		}
		defer func() { _ = db.Close() }()

		if e4 = techocc.SaveCH(db, chTable, pipe.Rows, cfg); e4 != nil {
			return e4
		}
	}

	return nil
}

func main() {
	if e := rootCmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
