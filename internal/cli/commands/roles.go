package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/puzzlelint/internal/cli/output"
	"github.com/leapstack-labs/puzzlelint/pkg/puzzle"
)

// NewRolesCommand creates the roles command.
func NewRolesCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List the required files of a puzzle",
		Long: `List the file roles every puzzle directory must provide and the
file name each role maps to.`,
		Example: `  puzzlelint roles
  puzzlelint roles --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd, format).Renderer

			roles := rolesOutput()
			if ok, err := r.Structured(roles); ok {
				return err
			}

			r.Header(1, "Required Files")
			rows := make([][]string, 0, len(roles))
			for _, role := range roles {
				rows = append(rows, []string{role.Role, role.File})
			}
			r.Table([]string{"Role", "File"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json, yaml")
	return cmd
}

func rolesOutput() []output.RoleOutput {
	roles := puzzle.Roles()
	out := make([]output.RoleOutput, 0, len(roles))
	for _, role := range roles {
		out = append(out, output.RoleOutput{Role: role.String(), File: role.FileName()})
	}
	return out
}
