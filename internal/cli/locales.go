package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func newLocalesCommand() *cobra.Command {
	var idsOnly bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locale ids that have data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(cmd.Context())
			if err != nil {
				return err
			}
			provider, err := cfg.Provider()
			if err != nil {
				return err
			}
			available, err := provider.AvailableLocales()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if idsOnly {
				for _, id := range available.IDs() {
					if _, err := fmt.Fprintln(out, id); err != nil {
						return err
					}
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, id := range available.IDs() {
				fmt.Fprintf(tw, "%s\t%s\n", id, displayName(id))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print locale ids only")
	return cmd
}

// displayName returns the English name of a locale id, or "" when the id
// is not a well-formed BCP 47 tag
func displayName(id string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
