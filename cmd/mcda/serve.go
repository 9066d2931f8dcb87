package main

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcda/cache"
	"github.com/katalvlaran/mcda/internal/httpapi"
)

func newServeCmd(logger *log.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the model evaluator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(logger, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func runServe(logger *log.Logger, addr string) error {
	srv := httpapi.New(
		httpapi.WithLogger(logger),
		httpapi.WithCache(cache.NewMemory()),
		httpapi.WithRegistry(prometheus.DefaultRegisterer),
	)

	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, srv)
}
