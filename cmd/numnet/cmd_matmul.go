package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/numnet/internal/api"
	"github.com/born-ml/numnet/internal/envconfig"
	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/tensor"
)

func newMatMulCmd() *cobra.Command {
	var aFlag, bFlag, providerFlag string

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Multiply two ramp-filled float32 matrices",
		Long: `Fills a with 1, 2, 3, ... and b with 1, 2, 3, ... in row-major order,
computes a @ b with the selected provider and prints the result.`,
		Example: "  numnet matmul --a 2,3 --b 3,2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prov := envconfig.Provider()
			if providerFlag != "" {
				p, err := opr.ParseProvider(providerFlag)
				if err != nil {
					return err
				}
				prov = p
			}

			a, err := rampTensor(aFlag)
			if err != nil {
				return fmt.Errorf("a: %w", err)
			}
			b, err := rampTensor(bFlag)
			if err != nil {
				return fmt.Errorf("b: %w", err)
			}
			want, err := matmulShape(a, b)
			if err != nil {
				return err
			}
			outData := make([]float32, want.Count())
			out := api.FromSlice(outData, want.Dims()...)

			klog.V(2).InfoS("Running matmul", "a", a.Shape, "b", b.Shape, "provider", prov)
			if err := api.MatMul(a, b, out, nil, prov); err != nil {
				return err
			}
			return printMatrix(cmd, want, outData)
		},
	}

	cmd.Flags().StringVar(&aFlag, "a", "2,3", "shape of a")
	cmd.Flags().StringVar(&bFlag, "b", "3,2", "shape of b")
	cmd.Flags().StringVar(&providerFlag, "provider", "", "operator provider (default from NUMNET_PROVIDER)")
	return cmd
}

func rampTensor(shapeFlag string) (*api.NativeTensor, error) {
	dims, err := parseDims(shapeFlag)
	if err != nil {
		return nil, err
	}
	shape, err := tensor.NewShape(dims...)
	if err != nil {
		return nil, err
	}
	data := make([]float32, shape.Count())
	for i := range data {
		data[i] = float32(i + 1)
	}
	return api.FromSlice(data, dims...), nil
}

// matmulShape returns the output shape for a @ b, or a numnet error.
func matmulShape(a, b *api.NativeTensor) (tensor.Shape, error) {
	as, err := tensor.NewShape(a.Shape...)
	if err != nil {
		return tensor.Shape{}, err
	}
	bs, err := tensor.NewShape(b.Shape...)
	if err != nil {
		return tensor.Shape{}, err
	}
	want, st := opr.DeduceMatMul(as, bs)
	if !st.IsOK() {
		return tensor.Shape{}, st.Err()
	}
	return want, nil
}

// printMatrix prints the result one row per line, batches one after another.
func printMatrix(cmd *cobra.Command, shape tensor.Shape, data []float32) error {
	dims := shape.Dims()
	cols := dims[len(dims)-1]
	fmt.Fprintln(cmd.OutOrStdout(), shape)

	header := make([]string, cols)
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	table := newTable(cmd, header...)
	for i := 0; i < len(data); i += cols {
		row := make([]string, cols)
		for j, v := range data[i : i+cols] {
			row[j] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
