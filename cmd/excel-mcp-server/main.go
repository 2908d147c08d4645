package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soralis/excel-mcp-server/internal/server"
)

// version is overridden at build time via -ldflags="-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		transport string
		port      int
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:     "excel-mcp-server",
		Short:   "MCP server for reading and writing Excel workbooks",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("transport") {
				config.Transport = server.Transport(transport)
			}
			if cmd.Flags().Changed("port") {
				config.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				config.LogLevel = logLevel
			}

			log := logrus.New()
			// stdout carries the MCP protocol, logs must not interleave
			log.SetOutput(os.Stderr)
			level, err := logrus.ParseLevel(config.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			s := server.New(version, log)
			if err := s.Start(config); err != nil {
				log.WithError(err).Error("server terminated")
				return err
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&transport, "transport", string(server.TransportStdio), "transport to serve on (stdio or http)")
	cmd.Flags().IntVar(&port, "port", 8007, "port for the http transport")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	return cmd
}
