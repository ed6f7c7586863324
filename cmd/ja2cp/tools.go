package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JiepengTan/ja2cp"
)

var (
	mycModID string
	mycIn    string
	mycOut   string

	vanillaObjects string
	vanillaOut     string
)

// mycCmd rewrites Multi Yield Crops rules for the converted item IDs
var mycCmd = &cobra.Command{
	Use:   "myc",
	Short: "Rewrite Multi Yield Crops HarvestRules.json for converted items",
	Long: `Renames the crop and item names in a Multi Yield Crops HarvestRules.json
to the qualified item IDs written by "convert". Names found in the vanilla
index are kept.

Example:
  ja2cp myc --mod-id Author.MyCrops --in old/HarvestRules.json --out new/HarvestRules.json --vanilla vanillaObjects.json`,
	Args: cobra.NoArgs,
	RunE: runMYC,
}

// vanillaCmd builds the vanilla name index from unpacked game data
var vanillaCmd = &cobra.Command{
	Use:   "vanilla",
	Short: "Build the vanilla object name index",
	Long: `Reads the unpacked Data/Objects.json of the game and writes a compact
name -> item ID index, usable with --vanilla.`,
	Args: cobra.NoArgs,
	RunE: runVanilla,
}

func init() {
	mycCmd.Flags().StringVar(&mycModID, "mod-id", "", "UniqueID of the converted pack")
	mycCmd.Flags().StringVar(&mycIn, "in", "", "Multi Yield Crops HarvestRules.json to convert")
	mycCmd.Flags().StringVar(&mycOut, "out", "", "Output path")
	_ = mycCmd.MarkFlagRequired("mod-id")
	_ = mycCmd.MarkFlagRequired("in")
	_ = mycCmd.MarkFlagRequired("out")

	vanillaCmd.Flags().StringVar(&vanillaObjects, "objects", "", "Unpacked Content/Data/Objects.json")
	vanillaCmd.Flags().StringVar(&vanillaOut, "out", "vanillaObjects.json", "Index output path")
	_ = vanillaCmd.MarkFlagRequired("objects")
}

func runMYC(cmd *cobra.Command, args []string) error {
	vanilla, err := loadVanilla()
	if err != nil {
		return err
	}
	if vanilla == nil {
		logger.Warn("no vanilla index given, every name will be prefixed with the mod ID")
	}

	in := cleanPath(mycIn)
	doc, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	converted, err := ja2cp.ConvertHarvestRules(doc, mycModID, vanilla)
	if err != nil {
		return err
	}

	out := cleanPath(mycOut)
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, converted, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Info("harvest rules written", zap.String("path", out))
	return nil
}

func runVanilla(cmd *cobra.Command, args []string) error {
	idx, err := ja2cp.LoadVanillaIndex(cleanPath(vanillaObjects))
	if err != nil {
		return err
	}
	if len(idx) == 0 {
		return errors.New("no named objects found")
	}
	out := cleanPath(vanillaOut)
	if err := idx.Save(out); err != nil {
		return err
	}
	logger.Info("vanilla index written", zap.String("path", out), zap.Int("objects", len(idx)))
	return nil
}
