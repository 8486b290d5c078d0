package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rebergen/dataset"
	"github.com/katalvlaran/rebergen/gen"
)

var (
	datasetSize int
	datasetOut  string
	datasetDB   string
	datasetID   string
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build a balanced labeled dataset and export it",
	Long: `Builds a dataset of --size examples over the selected grammar: the first
half valid strings (label 1), the rest corrupted strings (label 0), each
encoded as a variable-length symbol-id sequence.

The dataset is written as JSON Lines to --out ("-" for stdout), or catalogued
in a SQLite file with --db (optionally under an explicit --id).`,
	Args: cobra.NoArgs,
	RunE: runDataset,
}

func init() {
	datasetCmd.Flags().IntVarP(&datasetSize, "size", "s", 10000, "total number of examples")
	datasetCmd.Flags().StringVarP(&datasetOut, "out", "o", "-", `JSONL output path, "-" for stdout`)
	datasetCmd.Flags().StringVar(&datasetDB, "db", "", "SQLite file to catalogue the dataset in (instead of JSONL)")
	datasetCmd.Flags().StringVar(&datasetID, "id", "", "dataset id within --db (default: a fresh UUID)")
}

func runDataset(cmd *cobra.Command, args []string) error {
	g, err := resolveGrammar()
	if err != nil {
		return err
	}
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}

	ds, err := dataset.Build(datasetSize, g, a, gen.WithSeed(seed))
	if err != nil {
		return err
	}
	logger.Info("dataset built",
		zap.String("examples", humanize.Comma(int64(ds.Len()))),
		zap.String("valid", humanize.Comma(int64(ds.CountLabel(dataset.LabelValid)))),
		zap.String("corrupted", humanize.Comma(int64(ds.CountLabel(dataset.LabelCorrupted)))),
		zap.Int64("seed", seed))

	if datasetDB != "" {
		store, err := dataset.OpenStore(datasetDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		id, err := store.Save(context.Background(), datasetID, ds)
		if err != nil {
			return err
		}
		logger.Info("dataset stored", zap.String("db", datasetDB), zap.String("id", id))
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	}

	if datasetOut == "-" {
		return dataset.WriteJSONL(cmd.OutOrStdout(), ds)
	}
	f, err := os.Create(datasetOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", datasetOut, err)
	}
	defer func() { _ = f.Close() }()

	if err := dataset.WriteJSONL(f, ds); err != nil {
		return err
	}
	logger.Info("dataset written", zap.String("path", datasetOut))
	return f.Close()
}
