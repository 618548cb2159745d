package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/templates"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:       "templates [chord|scale]",
	Short:     "Lists the known chord or scale shapes",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{templates.CategoryChord, templates.CategoryScale},
	RunE: func(cmd *cobra.Command, args []string) error {
		category := templates.CategoryChord
		if len(args) == 1 {
			category = args[0]
		}
		table, err := tableFor(category)
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), table)
		return nil
	},
}

var errUnknownCategory = errors.New("unknown template category")

func tableFor(category string) (*templates.Table, error) {
	switch strings.TrimSuffix(strings.ToLower(category), "s") {
	case templates.CategoryChord:
		return chord.KindChord.Table(), nil
	case templates.CategoryScale:
		return chord.KindScale.Table(), nil
	}
	return nil, errors.Wrapf(errUnknownCategory, "%q", category)
}

func inspect(w io.Writer, table *templates.Table) {
	for _, tpl := range table.Templates() {
		fmt.Fprintf(w, "%s: %s\n", tpl.Name(), tpl.LongName())
		fmt.Fprintf(w, "  aliases: %s\n", strings.Join(tpl.Names(), ", "))
		fmt.Fprintf(w, "  required: %v\n", tpl.Required())
		if tpl.HasOptional() {
			fmt.Fprintf(w, "  optional: %v\n", tpl.Optional())
		}
	}
}
