package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonal/match"
	"github.com/jsphweid/tonal/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var plain bool

func init() {
	matchCmd.Flags().BoolVar(&plain, "plain", false, "no colours, lit keys in brackets")
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <text>...",
	Short: "Shows whatever note, chord or scale the text names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		res := match.Find(text)
		if len(res) == 0 {
			return errors.Errorf("%q is not a note, chord or scale", text)
		}
		k := render.Keyboard{PreferFlats: preferFlats, Plain: plain}
		for _, m := range res {
			fmt.Fprintln(cmd.OutOrStdout(), render.Match(k, m, preferFlats, plain))
		}
		return nil
	},
}
