package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/export"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <plan.json>",
		Short: "Validate and summarize a saved plan",
		Long: `Read a plan written by 'floorplan plan -o' and print its summary.

The file is checked before anything is printed: unknown fields, another
format version or a malformed ID are rejected. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc export.Document
				err error
			)
			if args[0] == "-" {
				doc, err = export.ReadJSON(cmd.InOrStdin())
			} else {
				doc, err = export.ImportJSON(args[0])
			}
			if err != nil {
				return err
			}

			if asJSON {
				return export.WriteJSON(doc, cmd.OutOrStdout())
			}
			printPlanSummary(doc, false)
			if doc.Prompt != "" {
				printKeyValue("Prompt", doc.Prompt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the validated plan to stdout")
	return cmd
}
