package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atulub35/outsider-client-go/internal/app"
	internalhttp "github.com/atulub35/outsider-client-go/internal/pkg/http"
	"github.com/atulub35/outsider-client-go/internal/session"
	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
	pkgtime "github.com/atulub35/outsider-client-go/pkg/time"
)

var logLevelMap = map[string]pkglog.Level{
	"disabled": pkglog.LevelDisabled,
	"debug":    pkglog.LevelDebug,
	"info":     pkglog.LevelInfo,
	"warn":     pkglog.LevelWarn,
	"error":    pkglog.LevelError,
}

var rootCmd = &cobra.Command{
	Use:          "outsider",
	Short:        "Client for the Outsider social platform",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "backend base URL (overrides OUTSIDER_SERVICE_URL)")
	rootCmd.PersistentFlags().String("token-file", "", "path to the persisted session token")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (disabled, debug, info, warn, error)")
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("token_file", rootCmd.PersistentFlags().Lookup("token-file"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("outsider")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".outsider")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig()
	}
}

func initLogger() pkglog.Logger {
	level, ok := logLevelMap[viper.GetString("log_level")]
	if !ok {
		level = pkglog.LevelWarn
	}
	return pkglog.New(level)
}

func tokenFilePath() string {
	if path := viper.GetString("token_file"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".outsider-token"
	}
	return filepath.Join(home, ".outsider", "token")
}

// newContainer wires the client. Initialize settles the stored
// session before any command runs, so protected commands observe a
// settled state, never a loading one.
func newContainer(ctx context.Context) *app.Container {
	logger := initLogger()
	container := app.MustInitContainer(
		internalhttp.NewClientFactory(logger),
		viper.GetString("base_url"),
		session.NewFileTokenStore(tokenFilePath()),
		loginHintNavigator{},
		pkgtime.NewAdjustableClock(),
		logger,
	)

	container.Session.Initialize(ctx)
	return container
}

// loginHintNavigator is the CLI rendition of the login redirect.
type loginHintNavigator struct{}

func (loginHintNavigator) ToLogin(context.Context) {
	fmt.Fprintln(os.Stderr, "session expired, run 'outsider login' to sign in again")
}
