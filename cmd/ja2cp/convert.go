package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JiepengTan/ja2cp"
)

var (
	convertMode string
	convertSrc  string
	convertDst  string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a JSON Assets pack",
	Long: `Converts one kind of content of a JSON Assets pack.

Modes:
  - objects: Objects and BigCraftables, with cooking and crafting recipes
  - crops:   Objects plus Crops (seed packets and crop data)
  - trees:   Objects plus FruitTrees (saplings and tree data)
  - weapons: Weapons

Example:
  ja2cp convert -m crops -s "[JA] My Crops" -d "[CP] My Crops"`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", string(ja2cp.ModeObjects), "Conversion mode: objects, crops, trees, weapons")
	convertCmd.Flags().StringVarP(&convertSrc, "src", "s", "", "Source directory, e.g. [JA] Your Json Assets Mod")
	convertCmd.Flags().StringVarP(&convertDst, "dst", "d", "", "Destination directory")
	_ = convertCmd.MarkFlagRequired("src")
	_ = convertCmd.MarkFlagRequired("dst")
}

func runConvert(cmd *cobra.Command, args []string) error {
	mode, err := ja2cp.ParseMode(convertMode)
	if err != nil {
		return err
	}

	srcDir := cleanPath(convertSrc)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return fmt.Errorf("source directory %s is not a valid directory", srcDir)
	}
	manifest, err := ja2cp.LoadManifest(srcDir)
	if err != nil {
		return err
	}

	dstDir := cleanPath(convertDst)
	if err := os.MkdirAll(filepath.Join(dstDir, filepath.FromSlash(ja2cp.TexturesDir)), 0755); err != nil {
		return fmt.Errorf("could not create destination directory %s: %w", dstDir, err)
	}

	vanilla, err := loadVanilla()
	if err != nil {
		return err
	}

	logPrefix := cfg.LogPrefix
	if logPrefix == "" {
		logPrefix = manifest.Name
	}
	result, err := ja2cp.Convert(srcDir, mode, ja2cp.Options{
		ModID:     manifest.UniqueID,
		LogPrefix: logPrefix,
		Format:    cfg.Format,
		Vanilla:   vanilla,
		Settings:  cfg.ModeSettings(mode),
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if err := result.Write(dstDir, logger); err != nil {
		return err
	}

	logger.Info("conversion finished",
		zap.String("mode", string(mode)),
		zap.Int("changes", len(result.Pack.Changes)),
		zap.String("destination", dstDir))
	return nil
}
