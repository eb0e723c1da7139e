package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/starrating/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered stars and ratings as PNG over HTTP",
	Long: `Serve starts an HTTP server with these routes:

  GET /healthz
  GET /star.png?fill=&size=&color=
  GET /rating.png?rating=&width=&height=&color=&spacing=
  GET /fills?rating=

The server stops on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default server.addr)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg).Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
