package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/taigrr/rtcore/pkg/math3d"
	"github.com/taigrr/rtcore/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the node transforms of a glTF or GLB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := models.LoadNodes(args[0])
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("no nodes"))
				return nil
			}
			for _, n := range nodes {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatNode(n))
			}
			return nil
		},
	}
}

// formatNode renders the transforms of one node as a text block.
func formatNode(n models.Node) string {
	var b strings.Builder

	name := n.Name
	if name == "" {
		name = "(unnamed)"
	}
	title := fmt.Sprintf("node %d %s", n.Index, name)
	if n.Parent >= 0 {
		title += fmt.Sprintf(" (parent %d)", n.Parent)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	b.WriteString(labelStyle.Render("local") + "\n")
	b.WriteString(formatMatrix(n.Local))
	b.WriteString(labelStyle.Render("world") + "\n")
	b.WriteString(formatMatrix(n.World))

	det := n.World.Determinant()
	fmt.Fprintf(&b, "%s %g\n", labelStyle.Render("determinant"), det)

	inv, err := n.World.Inverse()
	if err != nil {
		b.WriteString(warnStyle.Render("not invertible") + "\n")
		return b.String()
	}
	b.WriteString(labelStyle.Render("inverse") + "\n")
	b.WriteString(formatMatrix(inv))
	return b.String()
}

func formatMatrix(m math3d.Matrix4) string {
	var b strings.Builder
	for _, row := range m.Rows() {
		fmt.Fprintf(&b, "  %10.4f %10.4f %10.4f %10.4f\n", row[0], row[1], row[2], row[3])
	}
	return b.String()
}
