package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Product catalog API with users, authentication and search",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (e.g. .env)")
}

func initConfig() error {
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("JWT_TTL", "1h")
	viper.SetDefault("QUERY_TIMEOUT", "5s")
	viper.SetDefault("DATABASE_MAX_CONNS", 10)
	viper.SetDefault("STORAGE_TYPE", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MIGRATIONS_PATH", "file://internal/database/migrations")

	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
