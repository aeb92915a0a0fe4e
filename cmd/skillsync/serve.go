package main

import (
	"github.com/jonathan/skillsync/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveHost    string
	serveProfile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local API server",
	Long:  `Start an HTTP server that exposes one student session as JSON endpoints for the web client.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to bind (default from config, localhost)")
	serveCmd.Flags().StringVarP(&serveProfile, "profile", "p", "", "Start the session from this profile JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}

	p, err := loadProfile(profilePath(serveProfile, cfg))
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:           cfg.Addr(),
		AllowedOrigins: cfg.AllowedOrigins,
		Profile:        p,
	})
	return srv.Start(cmd.Context())
}
