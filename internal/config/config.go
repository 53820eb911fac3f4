// Package config loads ngl10n settings from defaults, an ngl10n.yaml file,
// NGL10N_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/ngl10n/internal/edits"
	"bennypowers.dev/ngl10n/internal/locale"
	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/workspace"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment variables, e.g. NGL10N_LOCALE
const EnvPrefix = "NGL10N_"

// FileNames are the config files looked up in the project root, in order
var FileNames = []string{"ngl10n.yaml", "ngl10n.yml"}

// Config is the effective configuration of one ngl10n invocation
type Config struct {
	// ProjectRoot anchors relative paths and the node_modules search
	ProjectRoot string `koanf:"project_root" yaml:"project_root"`
	// Locale is the requested locale id
	Locale string `koanf:"locale" yaml:"locale"`
	// EntryClass is the root module class passed to bootstrapModule
	EntryClass string `koanf:"entry_class" yaml:"entry_class"`
	// EntryPath is the module declaring EntryClass
	EntryPath string `koanf:"entry_path" yaml:"entry_path"`
	// LocalesDir overrides discovery of @angular/common/locales
	LocalesDir string `koanf:"locales_dir" yaml:"locales_dir,omitempty"`
	// LocalesPattern selects locale data files inside LocalesDir
	LocalesPattern string `koanf:"locales_pattern" yaml:"locales_pattern"`
	DataModule     string `koanf:"data_module" yaml:"data_module"`
	RegistryModule string `koanf:"registry_module" yaml:"registry_module"`
	RegisterFunc   string `koanf:"register_func" yaml:"register_func"`
	LogLevel       string `koanf:"log_level" yaml:"log_level"`

	// File is the config file that was loaded, if any
	File string `koanf:"-" yaml:"-"`
}

// Defaults returns the built-in configuration values
func Defaults() map[string]any {
	return map[string]any{
		"project_root":    ".",
		"entry_class":     "AppModule",
		"entry_path":      "./app/app.module",
		"locales_pattern": locale.DefaultPattern,
		"data_module":     edits.DefaultDataModule,
		"registry_module": edits.DefaultRegistryModule,
		"register_func":   edits.DefaultRegisterFunc,
		"log_level":       "info",
	}
}

// Load builds the configuration. Precedence, highest first:
// flags > environment > config file > defaults.
// cfgFile may be empty, in which case ngl10n.yaml is looked up in the
// project root.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	root := projectRootHint(flags)
	if cfgFile == "" {
		cfgFile = findConfigFile(root)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		log.Debug("loaded config from %s", cfgFile)
	}

	// NGL10N_LOCALES_DIR -> locales_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	// A project root from the config file is relative to that file
	if cfgFile != "" && !filepath.IsAbs(cfg.ProjectRoot) && !flagChanged(flags, "project-root") && os.Getenv(EnvPrefix+"PROJECT_ROOT") == "" {
		cfg.ProjectRoot = filepath.Join(filepath.Dir(cfgFile), cfg.ProjectRoot)
	}
	if abs, err := filepath.Abs(cfg.ProjectRoot); err == nil {
		cfg.ProjectRoot = abs
	}
	if cfg.LocalesDir != "" && !filepath.IsAbs(cfg.LocalesDir) {
		cfg.LocalesDir = filepath.Join(cfg.ProjectRoot, cfg.LocalesDir)
	}

	return &cfg, nil
}

// projectRootHint returns the --project-root flag value, or the working directory
func projectRootHint(flags *pflag.FlagSet) string {
	if flagChanged(flags, "project-root") {
		if v, err := flags.GetString("project-root"); err == nil && v != "" {
			return v
		}
	}
	if v := os.Getenv(EnvPrefix + "PROJECT_ROOT"); v != "" {
		return v
	}
	return "."
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	return flags != nil && flags.Lookup(name) != nil && flags.Changed(name)
}

// findConfigFile returns the first of FileNames present in dir
func findConfigFile(dir string) string {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// EditOptions returns the synthesized-code settings
func (c *Config) EditOptions() edits.Options {
	return edits.Options{
		DataModule:     c.DataModule,
		RegistryModule: c.RegistryModule,
		RegisterFunc:   c.RegisterFunc,
	}
}

// LocalesDirectory returns LocalesDir, or the locales directory of the
// @angular/common package installed for the project.
func (c *Config) LocalesDirectory() (string, error) {
	if c.LocalesDir != "" {
		return c.LocalesDir, nil
	}
	pkg, err := workspace.FindPackage(c.ProjectRoot, workspace.CommonPackage)
	if err != nil {
		return "", err
	}
	return pkg.LocalesDir(), nil
}

// Provider returns a locale provider reading the configured locales directory
func (c *Config) Provider() (locale.Provider, error) {
	dir, err := c.LocalesDirectory()
	if err != nil {
		return nil, err
	}
	p := locale.NewDirProvider(dir)
	p.Pattern = c.LocalesPattern
	return p, nil
}

// Level parses LogLevel
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
