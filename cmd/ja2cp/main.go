package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JiepengTan/ja2cp"
	"github.com/JiepengTan/ja2cp/internal/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	vanillaPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ja2cp",
	Short: "Convert JSON Assets packs to Content Patcher",
	Long: `ja2cp converts Stardew Valley content packs written for JSON Assets into
Content Patcher patches, stitching item sprites into spritesheets and
writing i18n translation files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		if vanillaPath != "" {
			cfg.VanillaIndex = vanillaPath
		}
		logger, err = cfg.BuildLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the ja2cp YAML config")
	rootCmd.PersistentFlags().StringVar(&vanillaPath, "vanilla", "", "Vanilla Data/Objects.json or saved index, used to resolve vanilla item names")

	rootCmd.AddCommand(convertCmd, mycCmd, vanillaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadVanilla reads the configured vanilla index, if any
func loadVanilla() (ja2cp.VanillaIndex, error) {
	if cfg.VanillaIndex == "" {
		return nil, nil
	}
	idx, err := ja2cp.LoadVanillaIndex(cleanPath(cfg.VanillaIndex))
	if err != nil {
		return nil, err
	}
	logger.Debug("vanilla index loaded", zap.Int("objects", len(idx)))
	return idx, nil
}

// cleanPath accepts paths pasted from a shell or Windows explorer: quotes
// are stripped, ~ is expanded and backslashes become separators.
func cleanPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), `"'`)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = home + p[1:]
		}
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return filepath.Clean(filepath.FromSlash(p))
}
