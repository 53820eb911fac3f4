package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/transform"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

type registerOptions struct {
	write bool
	diff  bool
	check bool
}

func newRegisterCommand() *cobra.Command {
	var opts registerOptions

	cmd := &cobra.Command{
		Use:   "register <entry-file>",
		Short: "Insert locale data registration into an entry file",
		Long: `Parse the entry file, find the bootstrapModule call for the entry class
and insert the locale data import, the registerLocaleData import and the
registration call before the first statement.

Files that do not bootstrap the entry class are left unchanged.
An unresolvable locale exits with status 2 and no changes.`,
		Example: `  ngl10n register src/main.ts --locale fr
  ngl10n register src/main.ts -l en_us --diff
  ngl10n register src/main.ts -l de --write --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "rewrite the file in place")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print a unified diff instead of the rewritten file")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if the rewritten file does not parse")

	return cmd
}

func runRegister(cmd *cobra.Command, path string, opts registerOptions) error {
	cfg, err := getConfig(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.Locale == "" {
		return errors.New("no locale configured: pass --locale or set locale in ngl10n.yaml")
	}

	provider, err := cfg.Provider()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path) //nolint:gosec // G304: entry file named on the command line
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	pass := &transform.Pass{Provider: provider, Edits: cfg.EditOptions()}
	entry := transform.EntryModule{Path: cfg.EntryPath, ClassName: cfg.EntryClass}

	out, res, err := pass.Rewrite(path, source, entry, cfg.Locale)
	if err != nil {
		return err
	}
	if res.Sites == 0 {
		log.Info("%s does not bootstrap %s; leaving it unchanged", path, cfg.EntryClass)
	}

	if opts.check {
		if err := transform.Verify(path, out); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	switch {
	case opts.diff:
		if bytes.Equal(source, out) {
			return nil
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(source)),
			B:        difflib.SplitLines(string(out)),
			FromFile: "a/" + path,
			ToFile:   "b/" + path,
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("failed to diff %s: %w", path, err)
		}
		_, err = fmt.Fprint(w, text)
		return err
	case opts.write:
		if bytes.Equal(source, out) {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Info("registered locale %q in %s", res.Resolution.Locale, path)
		return nil
	default:
		_, err = w.Write(out)
		return err
	}
}
