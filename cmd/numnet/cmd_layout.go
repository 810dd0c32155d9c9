package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/numnet/internal/tensor"
)

func newLayoutCmd() *cobra.Command {
	var shapeFlag, strideFlag, dtypeFlag string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Describe the layout of a shape and dtype",
		Example: `  numnet layout --shape 2,3 --dtype float32
  numnet layout --shape 3,2 --strides 1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := buildLayout(shapeFlag, strideFlag, dtypeFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), layout)
			table := newTable(cmd, "PROPERTY", "VALUE")
			table.AppendBulk([][]string{
				{"ndim", strconv.Itoa(layout.NDim())},
				{"count", strconv.Itoa(layout.Count())},
				{"span", strconv.Itoa(layout.SpanElements())},
				{"bytes", strconv.Itoa(layout.ContentBytes())},
				{"contiguous", strconv.FormatBool(layout.IsContiguous())},
			})
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeFlag, "shape", "", "extents, outermost first (empty for a scalar)")
	cmd.Flags().StringVar(&strideFlag, "strides", "", "element strides, outermost first (default dense)")
	cmd.Flags().StringVar(&dtypeFlag, "dtype", "float32", "element type")
	return cmd
}

func buildLayout(shapeFlag, strideFlag, dtypeFlag string) (tensor.Layout, error) {
	dtype, err := tensor.ParseDataType(dtypeFlag)
	if err != nil {
		return tensor.Layout{}, err
	}
	dims, err := parseDims(shapeFlag)
	if err != nil {
		return tensor.Layout{}, fmt.Errorf("shape: %w", err)
	}
	shape, err := tensor.NewShape(dims...)
	if err != nil {
		return tensor.Layout{}, fmt.Errorf("shape: %w", err)
	}
	if strideFlag == "" {
		return tensor.NewLayout(shape, dtype), nil
	}
	strides, err := parseDims(strideFlag)
	if err != nil {
		return tensor.Layout{}, fmt.Errorf("strides: %w", err)
	}
	return tensor.NewStridedLayout(shape, strides, dtype)
}
