package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcda"
	"github.com/katalvlaran/mcda/config"
	"github.com/katalvlaran/mcda/visualize"
)

func newGraphCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <model.toml> <out.svg>",
		Short: "Render a model's importance-group DAG to SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(logger, args[0], args[1])
		},
	}
}

func runGraph(logger *log.Logger, modelPath, outPath string) error {
	criteria, alternatives, preferences, err := config.Load(modelPath)
	if err != nil {
		return err
	}

	m, err := mcda.NewModel(criteria, alternatives, preferences, mcda.WithLogger(logger))
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := visualize.ImportanceDAG(m, graphviz.SVG, f); err != nil {
		return err
	}
	logger.Info("rendered importance graph", "path", outPath)
	return nil
}
