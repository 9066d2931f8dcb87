package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcda"
	"github.com/katalvlaran/mcda/config"
)

var (
	colorSurvivor = lipgloss.Color("35")  // green, matching the pack's "success" color slot
	colorDropped  = lipgloss.Color("245") // dim gray, matching the pack's "secondary text" slot

	styleSurvivor = lipgloss.NewStyle().Foreground(colorSurvivor).Bold(true)
	styleDropped  = lipgloss.NewStyle().Foreground(colorDropped)
	styleHeading  = lipgloss.NewStyle().Bold(true)
)

func newEvaluateCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <model.toml>",
		Short: "Evaluate a decision model and print its Pareto front and t-ordering survivors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(logger, args[0])
		},
	}
}

func runEvaluate(logger *log.Logger, path string) error {
	criteria, alternatives, preferences, err := config.Load(path)
	if err != nil {
		return err
	}

	m, err := mcda.NewModel(criteria, alternatives, preferences, mcda.WithLogger(logger))
	if err != nil {
		return err
	}

	pareto := asSet(m.ParetoFront())
	survivors := asSet(m.TOrdering())

	ids := append([]string(nil), m.ParetoFront()...)
	sort.Strings(ids)

	fmt.Println(styleHeading.Render("Alternative") + "   " + styleHeading.Render("Pareto") + "   " + styleHeading.Render("t-ordering"))
	for _, id := range ids {
		line := fmt.Sprintf("%-12s %-7s %-10s", id, mark(pareto[id]), mark(survivors[id]))
		if survivors[id] {
			fmt.Println(styleSurvivor.Render(line))
		} else {
			fmt.Println(styleDropped.Render(line))
		}
	}
	return nil
}

func asSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func mark(ok bool) string {
	if ok {
		return "survives"
	}
	return "dropped"
}
