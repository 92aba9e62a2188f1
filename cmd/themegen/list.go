package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/adapter/output"
	"github.com/jmylchreest/themegen/internal/theme"
)

var listOpts struct {
	baseDir string
	format  string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List theme groups and the themes they contain",
	Long: `List every theme group of the CSS tree, whether it has stock styles,
which themes already exist and which master stylesheets are present.

Themes whose stylesheets still import "stock" are flagged. The tree is
never modified.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listOpts.baseDir, "base-dir", "",
		"CSS tree containing the theme groups (default from config: eclipse-css)")
	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "",
		"Output format (plain, json, yaml; default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(listOpts.format)
	if err != nil {
		return err
	}

	baseDir := listOpts.baseDir
	if baseDir == "" {
		baseDir = cfg.Generate.BaseDir
	}

	inv, err := theme.ListGroups(baseDir)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format, output.DefaultFormatterOptions())
	if err := formatter.FormatInventory(cmd.OutOrStdout(), inv); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}
