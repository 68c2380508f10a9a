package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/convolve/sample"
)

func listTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := listTable("name", "size", "kernel", "description")
			for _, p := range a.cfg.Presets() {
				t.Row(p.Name, fmt.Sprintf("%dx%d", p.Kernel.Size(), p.Kernel.Size()), p.Kernel.String(), p.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the sample grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := listTable("name", "size")
			for _, name := range sample.Names() {
				g, err := sample.Load(name)
				if err != nil {
					return err
				}
				t.Row(name, fmt.Sprintf("%dx%d", g.Rows(), g.Cols()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
