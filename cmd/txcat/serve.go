package main

import (
	"log/slog"

	"github.com/Veraticus/txcat/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Long: `Start the HTTP API. The rule table and the classifier model are loaded
once at startup and shared by all requests.

Endpoints:
  POST /predict         classify one transaction
  POST /predict/batch   classify several transactions
  GET  /health          readiness and model status
  GET  /rules           active rule table in evaluation order
  GET  /stats           decisions per method since startup`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8000)")
	cmd.Flags().String("mode", "", "gin mode (debug, release, test)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.mode", cmd.Flags().Lookup("mode"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(e, slog.Default())

	return api.Serve(cmd.Context(), cfg.Server.Addr, router, slog.Default())
}
