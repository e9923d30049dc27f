package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/catalog"
)

// catalogCommand creates the catalog command and its export subcommand.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the room types the parser recognizes",
		Long: `List the room types the parser recognizes, with their size in feet.

Length runs along the corridor, depth away from it. Rooms from the settings
file are included. Use 'catalog export' to write the table as a starting
point for a custom catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.Config.BuildCatalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(cat))
			return nil
		},
	}

	cmd.AddCommand(c.catalogExportCommand())
	return cmd
}

// catalogExportCommand creates the "catalog export" subcommand.
func (c *CLI) catalogExportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.Config.BuildCatalog()
			if err != nil {
				return err
			}
			if output != "" && !cmd.Flags().Changed("format") {
				if format, err = catalog.FormatFromPath(output); err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := catalog.Encode(w, cat, format); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported %d room types", cat.Len())
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", catalog.FormatTOML, "output format: toml, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format inferred from extension)")
	return cmd
}

// catalogTable renders cat as a bordered table.
func catalogTable(cat *catalog.Catalog) string {
	var rows [][]string
	for _, e := range cat.Entries() {
		rows = append(rows, []string{
			catalog.Title(e.Name),
			formatFeet(e.Length),
			formatFeet(e.Depth),
			strings.Join(e.Aliases, ", "),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Room", "Length", "Depth", "Aliases").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Inherit(styleCell)
			}
			if col == 1 || col == 2 {
				return StyleNumber.Inherit(styleCell)
			}
			return styleCell
		}).
		String()
}
