// Package cli provides the ngl10n command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bennypowers.dev/ngl10n/internal/config"
	"bennypowers.dev/ngl10n/internal/locale"
	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/version"
	"github.com/spf13/cobra"
)

// configKey is used to store the loaded config in the command context
type configKey struct{}

// NewRootCommand creates the ngl10n root command and its subcommands
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "ngl10n",
		Short: "Register Angular locale data ahead of application bootstrap",
		Long: `ngl10n finds the platformX().bootstrapModule(AppModule) call in an
application entry file and inserts the imports and registerLocaleData call
needed for the configured locale, resolving miscased or differently
separated locale ids against the installed @angular/common locale data.`,
		Version: version.GetVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = log.LevelDebug
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())

			if cfg.File != "" {
				log.Debug("using config file %s", cfg.File)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: <project-root>/ngl10n.yaml)")
	flags.String("project-root", "", "project directory used to find node_modules and ngl10n.yaml")
	flags.StringP("locale", "l", "", "locale id to register, e.g. fr or en-US")
	flags.String("entry-class", "", "root module class passed to bootstrapModule (default AppModule)")
	flags.String("entry-path", "", "module path declaring the root module class")
	flags.String("locales-dir", "", "directory of locale data files (default: discovered @angular/common/locales)")
	flags.String("locales-pattern", "", "glob selecting locale data files in the locales directory")
	flags.String("data-module", "", "module prefix locale data is imported from")
	flags.String("registry-module", "", "module exporting the registration function")
	flags.String("register-func", "", "name of the registration function")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.BoolP("verbose", "v", false, "shorthand for --log-level debug")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRegisterCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newLocalesCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, locale.ErrUnknownLocale) {
			return 2
		}
		return 1
	}
	return 0
}

// getConfig retrieves the config from the command context
func getConfig(ctx context.Context) (*config.Config, error) {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c, nil
	}
	return config.Load("", nil)
}
