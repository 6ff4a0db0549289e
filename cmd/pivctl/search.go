package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/array"
	"github.com/joshuapare/pivkit/vec/search"
)

var (
	searchRange int
	searchOdd   bool
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().IntVar(&searchRange, "range", 0, "Search the values 1..N instead of listed values")
	cmd.Flags().BoolVar(&searchOdd, "odd", false, "With --range, keep only odd values")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <key> [values...]",
		Short: "Run binary and linear search over sorted int32 values",
		Long: `The search command stores the values (sorted ascending) in a partitioned
array and searches for key. It prints the residual binary search window, the
linear search result and the insertion point.

Example:
  pivctl search 57 --range 100
  pivctl search 56 --range 99 --odd
  pivctl search 7 3 9 1 7 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

type searchResult struct {
	Key       int32   `json:"key"`
	Size      int     `json:"size"`
	WindowLo  int     `json:"window_lo"`
	WindowHi  int     `json:"window_hi"`
	Window    []int32 `json:"window"`
	Linear    int     `json:"linear"`
	Insertion int     `json:"insertion_point"`
	Found     bool    `json:"found"`
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return int32(v), nil
}

func searchValues(args []string) ([]int32, error) {
	var vals []int32
	if searchRange > 0 {
		for v := 1; v <= searchRange; v++ {
			if searchOdd && v%2 == 0 {
				continue
			}
			vals = append(vals, int32(v))
		}
		return vals, nil
	}
	for _, a := range args {
		v, err := parseInt32(a)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals, nil
}

func runSearch(args []string) error {
	key, err := parseInt32(args[0])
	if err != nil {
		return err
	}
	vals, err := searchValues(args[1:])
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	arr, err := array.New(4, array.WithDirection(s.cfg.Dir()), array.WithAllocator(s.alloc))
	if err != nil {
		return err
	}
	defer arr.Release()

	if len(vals) > 0 {
		if _, err := arr.Partback(len(vals)); err != nil {
			return err
		}
		for i, v := range vals {
			buf.PutI32LE(arr.At(i), v)
		}
	}
	printVerbose("array: size=%d capacity=%d power=%d\n", arr.Size(), arr.Capacity(), arr.Power())

	k := make([]byte, 4)
	buf.PutI32LE(k, key)

	w, err := search.Binary(k, arr, search.Int32LE)
	if err != nil {
		return err
	}
	lin, err := search.Linear(k, arr, search.Int32LE)
	if err != nil {
		return err
	}
	_, found, err := search.Find(k, arr, search.Int32LE)
	if err != nil {
		return err
	}

	res := searchResult{
		Key:       key,
		Size:      arr.Size(),
		WindowLo:  w.Lo,
		WindowHi:  w.Hi,
		Window:    vals[w.Lo:w.Hi],
		Linear:    lin,
		Insertion: lin + 1,
		Found:     found,
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("window: [%d,%d) %v\n", res.WindowLo, res.WindowHi, res.Window)
	if lin >= 0 {
		printInfo("linear: index %d (value %d)\n", lin, vals[lin])
	} else {
		printInfo("linear: -1 (key sorts before every value)\n")
	}
	printInfo("insertion point: %d\n", res.Insertion)
	printInfo("found: %t\n", res.Found)
	return nil
}
