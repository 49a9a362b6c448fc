package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) clusterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster FILE",
		Short: "Cluster the graph in a TOML file into k groups",
		Example: `  slink cluster graph.toml -k 3
  slink cluster points.toml -k 2 --format toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.cluster(args[0])
			if err != nil {
				return err
			}
			return a.render(res)
		},
	}
	addClusterFlags(cmd.Flags())

	return cmd
}
