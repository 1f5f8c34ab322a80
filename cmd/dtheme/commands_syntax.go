package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/config"
	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/syntax"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax [theme_file]",
	Short: "Generate terminal and editor syntax palettes",
	Long:  "Generate a 16-color ANSI palette and syntax roles from a canonical theme, with output for VSCode and terminal emulators",
	Args:  cobra.MaximumNArgs(1),
	Run:   runSyntax,
}

func init() {
	syntaxCmd.Flags().Bool("vscode", false, "Output as VSCode theme JSON")
	syntaxCmd.Flags().String("vscode-enrich", "", "Enrich existing VSCode theme file with palette colors")
	syntaxCmd.Flags().String("terminal", "", fmt.Sprintf("Output a terminal color file: %v", config.Terminals()))
	syntaxCmd.Flags().Bool("roles", false, "Output named syntax roles instead of the ANSI palette")
}

func runSyntax(cmd *cobra.Command, args []string) {
	isVSCode, _ := cmd.Flags().GetBool("vscode")
	vscodeEnrich, _ := cmd.Flags().GetString("vscode-enrich")
	terminal, _ := cmd.Flags().GetString("terminal")
	roles, _ := cmd.Flags().GetBool("roles")

	algo, err := syntax.ParseAlgorithm(cfg.Contrast)
	if err != nil {
		log.Fatalf("Invalid contrast algorithm: %v", err)
	}

	mode := currentMode()
	t := loadTheme(args)
	p := syntax.Generate(t.Block(mode), mode, syntax.Options{Algorithm: algo})

	switch {
	case isVSCode:
		emit(func(w io.Writer) error { return writeJSON(w, p.VSCode(cfg.Name)) })
	case vscodeEnrich != "":
		data, err := readFile(vscodeEnrich)
		if err != nil {
			log.Fatalf("Error reading file: %v", err)
		}
		enriched, err := syntax.EnrichVSCodeTheme(data, p)
		if err != nil {
			log.Fatalf("Error enriching theme: %v", err)
		}
		emit(func(w io.Writer) error {
			_, err := fmt.Fprintln(w, string(enriched))
			return err
		})
	case terminal != "":
		emit(func(w io.Writer) error { return p.WriteTerminal(w, terminal) })
	case roles:
		emit(func(w io.Writer) error { return writeRoles(w, p) })
	default:
		emit(func(w io.Writer) error { return writePalette(w, p) })
		if showPreview() {
			fmt.Println(export.Swatches(export.HexSwatches("color", p.Colors[:])))
		}
	}
}

func writePalette(w io.Writer, p syntax.Palette) error {
	for i, c := range p.Colors {
		if _, err := fmt.Fprintf(w, "palette = %d=%s\n", i, c); err != nil {
			return err
		}
	}
	return nil
}

func writeRoles(w io.Writer, p syntax.Palette) error {
	for _, ri := range syntax.RoleIndex {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", ri.Role, p.Colors[ri.Index]); err != nil {
			return err
		}
	}
	return nil
}
