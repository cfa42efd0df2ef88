package cli

import (
	"github.com/spf13/cobra"

	"github.com/blaisecz/caffeine-planner/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "caffeinectl",
	Short:         "Offline caffeine planning",
	Long:          "caffeinectl runs the caffeine model locally: levels, crash and sleep predictions, schedule checks and optimization. Input is a JSON request, output is JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Level: logLevel, Format: "console", Service: "caffeinectl", Writer: cmd.ErrOrStderr()})
	},
}

var (
	inputFile     string
	maxGridPoints int
	pretty        bool
	logLevel      string
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "-", "Request JSON file (- for stdin)")
	rootCmd.PersistentFlags().IntVar(&maxGridPoints, "max-grid-points", 2000, "Maximum curve samples or optimizer grid points")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "Indent JSON output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(optimizeCmd)
}
