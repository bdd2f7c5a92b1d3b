package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/flowbuilder/internal/graphfile"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

var errInvalid = errors.New("workflow is invalid")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a workflow graph file (JSON or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			result := validation.Validate(g)
			renderResult(cmd.OutOrStdout(), args[0], g, result)
			if !result.IsValid {
				return errInvalid
			}
			return nil
		},
	}
}

func renderResult(w io.Writer, name string, g domain.Graph, result validation.ValidationResult) {
	fmt.Fprintln(w, titleStyle.Render(name))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d nodes, %d edges", len(g.Nodes), len(g.Edges))))

	if result.IsValid {
		fmt.Fprintln(w, validStyle.Render("✓ valid"))
		return
	}

	fmt.Fprintln(w, invalidStyle.Render(fmt.Sprintf("✗ %d problem(s)", len(result.Errors))))
	var b strings.Builder
	for _, e := range result.Errors {
		b.Reset()
		b.WriteString("  • ")
		b.WriteString(e.Message)
		if e.NodeID != "" {
			b.WriteString(dimStyle.Render("  [" + e.NodeID + "]"))
		}
		fmt.Fprintln(w, b.String())
	}
}
