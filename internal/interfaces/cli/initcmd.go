package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/SynthScreen/internal/config"
)

// NewInitCmd creates the init command: write a starter configuration file
// populated with the defaults.
func NewInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Example: `  synthscreen init
  synthscreen init --path /etc/synthscreen/config.yaml --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			PrintSuccess(cmd, "wrote "+path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "synthscreen.yaml", "destination file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
