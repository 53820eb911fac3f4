package cli

import (
	"errors"
	"fmt"

	"bennypowers.dev/ngl10n/internal/locale"
	"github.com/spf13/cobra"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [locale]",
		Short: "Show which locale data file a locale id resolves to",
		Long: `Resolve a locale id against the available locale data: verbatim first,
then ignoring case and '_' versus '-', then the parent language.
Without an argument the configured locale is resolved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd.Context())
			if err != nil {
				return err
			}

			requested := cfg.Locale
			if len(args) == 1 {
				requested = args[0]
			}
			if requested == "" {
				return errors.New("no locale given: pass one as an argument or use --locale")
			}

			provider, err := cfg.Provider()
			if err != nil {
				return err
			}
			available, err := provider.AvailableLocales()
			if err != nil {
				return err
			}

			res, err := locale.ResolveDetailed(requested, available, cfg.DataModule)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s match for %q)\n", res.Locale, res.Stage, res.Requested)
			return err
		},
	}
}
