package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vwency/policy-chat-gateway/pkg/config"
	applog "github.com/vwency/policy-chat-gateway/pkg/logger"
	"go.uber.org/zap"
)

const servicePath = "api_gateway"

var (
	env      string
	logLevel string

	cfg    config.ServiceConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Policy-aware chat gateway",
	Long: `Forwards employee questions to the permission-evaluating RAG backend
and turns denials into remediation messages that point the asker to the
right escalation contact.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		used, err := config.Init(env, servicePath, &cfg)
		if err != nil {
			return err
		}

		level := cfg.App.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger, err = applog.New(level)
		if err != nil {
			return err
		}

		logger.Debug("Config loaded", zap.String("file", used))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", os.Getenv("APP_ENV"), "config environment (selects config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override app.log_level")

	rootCmd.AddCommand(serveCmd, directoryCmd, askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
