package main

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combigen/gen"
)

func newSizeCmd(a *app) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "size <pattern>",
		Short: "Print the number of strings in the pattern's space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			size := g.Size()
			if exact {
				fmt.Fprintln(a.out, size.String())
			} else {
				fmt.Fprintln(a.out, humanize.BigComma(size))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "print plain digits without separators")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	index := new(big.Int)
	cmd := &cobra.Command{
		Use:   "get <pattern> --index I",
		Short: "Print the string at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			s, err := g.Get(index)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, s)
			return nil
		},
	}
	cmd.Flags().Var(newBigIntValue(index), "index", "index to decode")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	offset := new(big.Int)
	var limit int
	cmd := &cobra.Command{
		Use:   "list <pattern>",
		Short: "Print a window of strings in index order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit %d is negative", limit)
			}
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			it, err := gen.NewIterator(g)
			if err != nil {
				return err
			}
			if offset.Sign() > 0 {
				if err := it.Seek(offset); err != nil {
					return err
				}
			}
			for n := 0; (limit == 0 || n < limit) && it.Next(); n++ {
				fmt.Fprintln(a.out, it.Value())
			}
			return nil
		},
	}
	cmd.Flags().Var(newBigIntValue(offset), "offset", "index of the first string")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of strings, 0 for all")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var count int
	var seed int64
	cmd := &cobra.Command{
		Use:   "sample <pattern>",
		Short: "Print strings drawn uniformly at random",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count %d is negative", count)
			}
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			var opts []gen.SampleOption
			if cmd.Flags().Changed("seed") {
				opts = append(opts, gen.WithSeed(seed))
			} else if s, ok := a.seed(); ok {
				opts = append(opts, gen.WithSeed(s))
			}
			sampler := gen.NewSampler(opts...)
			for i := 0; i < count; i++ {
				s, err := sampler.Sample(g)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, s)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of samples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible samples (default: crypto/rand)")
	return cmd
}

func newVisitCmd(a *app) *cobra.Command {
	index := new(big.Int)
	cmd := &cobra.Command{
		Use:   "visit <pattern> --index I",
		Short: "Print the parts of the string at an index, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			return g.Visit(index, func(part string) {
				fmt.Fprintf(a.out, "%q\n", part)
			})
		},
	}
	cmd.Flags().Var(newBigIntValue(index), "index", "index to decode")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <pattern>",
		Short: "Print the canonical form of the compiled pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.compile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, g.String())
			return nil
		},
	}
}
