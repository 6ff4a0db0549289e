package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pivkit/internal/pio"
	"github.com/joshuapare/pivkit/vec/ustr"
)

var ustrEncode bool

func init() {
	cmd := newUstrCmd()
	cmd.Flags().BoolVar(&ustrEncode, "encode", false, "Print the length-prefixed wire form")
	rootCmd.AddCommand(cmd)
}

func newUstrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ustr <text>...",
		Short: "Store texts as length-prefixed Latin-1 strings",
		Long: `The ustr command converts each argument to a length-prefixed ISO-8859-1
string and reports its length, storage and capacity.

Example:
  pivctl ustr hello "a much longer string"
  pivctl ustr café --encode`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUstr(args)
		},
	}
	return cmd
}

type ustrResult struct {
	Text     string `json:"text"`
	Length   int    `json:"length"`
	Inline   bool   `json:"inline"`
	Capacity int    `json:"capacity"`
	Encoded  []byte `json:"encoded,omitempty"`
}

func runUstr(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	results := make([]ustrResult, 0, len(args))
	strs := make([]*ustr.String, 0, len(args))
	defer func() {
		for _, us := range strs {
			_ = us.Release()
		}
	}()

	for _, a := range args {
		us, err := ustr.FromString(a, ustr.WithAllocator(s.alloc))
		if err != nil {
			return err
		}
		strs = append(strs, us)
		r := ustrResult{
			Text:     us.String(),
			Length:   us.Len(),
			Inline:   us.IsInline(),
			Capacity: us.Capacity(),
		}
		if ustrEncode {
			r.Encoded = us.Encode()
		}
		results = append(results, r)
	}

	if jsonOut {
		return printJSON(results)
	}
	if quiet {
		return nil
	}
	for i, r := range results {
		storage := "block"
		if r.Inline {
			storage = "inline"
		}
		if _, err := pio.Fprintf(os.Stdout, "%-24S len=%-4d %-6s cap=%d",
			strs[i], r.Length, storage, r.Capacity); err != nil {
			return err
		}
		if ustrEncode {
			if _, err := pio.Fprintf(os.Stdout, " wire="); err != nil {
				return err
			}
			for _, b := range r.Encoded {
				if _, err := pio.Fprintf(os.Stdout, "%02x", b); err != nil {
					return err
				}
			}
		}
		if _, err := pio.Fprintf(os.Stdout, "\n"); err != nil {
			return err
		}
	}
	s.printStats()
	return nil
}
