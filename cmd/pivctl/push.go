package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pivkit/vec/pique"
	"github.com/joshuapare/pivkit/vec/region"
)

var (
	pushFixed int
	pushShow  bool
)

func init() {
	cmd := newPushCmd()
	cmd.Flags().IntVar(&pushFixed, "fixed", 0, "Use caller storage of this many bytes instead of growing")
	cmd.Flags().BoolVar(&pushShow, "show", false, "Print the stored values")
	rootCmd.AddCommand(cmd)
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <count>",
		Short: "Push 1..count onto a vector and report its growth",
		Long: `The push command pushes the values 1 through count onto a uint32 vector and
reports the resulting size, capacity and block traffic.

Example:
  pivctl push 1000
  pivctl push 100 --direction forward --budget 4096
  pivctl push 8 --fixed 16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(args)
		},
	}
	return cmd
}

type pushResult struct {
	Count     int        `json:"count"`
	Size      int        `json:"size"`
	Capacity  int        `json:"capacity"`
	Direction string     `json:"direction"`
	Values    []uint32   `json:"values,omitempty"`
	Blocks    blockStats `json:"blocks"`
}

func runPush(args []string) error {
	count, err := parseCount("count", args[0])
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	var v *pique.Vec[uint32]
	if pushFixed > 0 {
		v = pique.NewFixed(s.cfg.Dir(), pique.Uint32, make([]byte, pushFixed))
	} else {
		v = pique.New(s.cfg.Dir(), pique.Uint32, region.WithStrategy(s.strategy()))
	}
	defer v.Release()

	lastCap := v.Cap()
	for i := 1; i <= count; i++ {
		if err := v.Push(uint32(i)); err != nil {
			return fmt.Errorf("push %d of %d: %w", i, count, err)
		}
		if v.Cap() != lastCap {
			printVerbose("grew: size=%d capacity %d -> %d\n", v.Len(), lastCap, v.Cap())
			lastCap = v.Cap()
		}
	}

	res := pushResult{
		Count:     count,
		Size:      v.Len(),
		Capacity:  v.Cap(),
		Direction: s.cfg.Dir().String(),
		Blocks:    s.stats(),
	}
	if pushShow {
		res.Values = v.Values()
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("size: %d\n", res.Size)
	printInfo("capacity: %d\n", res.Capacity)
	printInfo("direction: %s\n", res.Direction)
	if pushShow {
		printInfo("values: %v\n", res.Values)
	}
	s.printStats()
	return nil
}
