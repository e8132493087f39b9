package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solstice/internal/globals"
	"solstice/internal/types"
)

var globalsCmd = &cobra.Command{
	Use:   "globals",
	Short: "Print the built-in declaration list published by the Global Context",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := types.NewInterner()
		ctx := globals.NewContext(in)
		for _, d := range ctx.Declarations() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", d.Name, in.Render(d.Type))
		}
		return nil
	},
}
