package cmd

import (
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/logger"
	"github.com/spf13/cobra"
)

var (
	preferFlats bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "Music theory toolkit",
	Long: `Parses notes, chords and scales, transposes them and names the chords
a set of pitches can spell.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&preferFlats, "flats", constants.GetPreferFlats(), "spell black keys with flats")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "log level (debug, info, warn, error)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
