package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dosewise/dosewise/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Run the HTTP API server. Flags can also be set via DOSEWISE_* environment variables or a .env file.",
		PreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; missing file is fine.
			_ = godotenv.Load()
		},
		Run: runServe,
	}

	cmd.Flags().String("addr", "", "Bind address")
	cmd.Flags().IntP("port", "p", 8480, "Bind port")

	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8480)
	viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	viper.SetEnvPrefix("dosewise")
	viper.AutomaticEnv()

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	srv := server.New(logger, s)
	addr := fmt.Sprintf("%s:%d", viper.GetString("addr"), viper.GetInt("port"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
}
