package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solstice/internal/diag"
	"solstice/internal/source"
	"solstice/internal/types"
)

var emptySpan = source.Span{}

var internCmd = &cobra.Command{
	Use:   "intern [elementary-type-name]",
	Short: "Parse an elementary type name and print its canonical rendering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := types.NewInterner()
		id, err := in.FromElementaryTypeName(args[0])
		if err != nil {
			reporter := diag.ColorReporter{Out: cmd.ErrOrStderr()}
			reporter.Report(diag.NewError(codeFor(err), emptySpan, err.Error()))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  (TypeID %s, kind %s)\n", in.Render(id), id, in.KindOf(id))
		return nil
	},
}

func codeFor(err error) diag.Code {
	itr, ok := err.(*types.InvalidTypeRequest)
	if !ok {
		return diag.UnknownCode
	}
	switch itr.Kind {
	case types.ErrUnknownElementaryType:
		return diag.TypeUnknownElementaryName
	case types.ErrBadIntegerWidth:
		return diag.TypeBadIntegerWidth
	case types.ErrBadFixedBytesLength:
		return diag.TypeBadFixedBytesLength
	case types.ErrBadFixedPointShape:
		return diag.TypeBadFixedPointShape
	case types.ErrBadMappingKey:
		return diag.TypeBadMappingKey
	case types.ErrInvalidLocationSuffix:
		return diag.TypeInvalidLocationSuffix
	default:
		return diag.UnknownCode
	}
}
