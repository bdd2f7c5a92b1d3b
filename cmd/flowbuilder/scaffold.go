package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/flowbuilder/internal/graphfile"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

func newScaffoldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold <file>",
		Short: "Write a starter Start -> End workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(args[0]); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
			}
			if err := graphfile.Save(args[0], starterGraph()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	return cmd
}

func starterGraph() domain.Graph {
	start := domain.NewNode(domain.KindStart, domain.Position{X: 100, Y: 100})
	end := domain.NewNode(domain.KindEnd, domain.Position{X: 400, Y: 100})
	g := domain.Graph{Nodes: []domain.Node{start, end}}
	return domain.Connect(g, start.ID, end.ID, "")
}
