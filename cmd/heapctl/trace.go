package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heapkit/heapkit/heap"
)

var (
	traceStrategy string
	traceLimit    int64
)

func init() {
	cmd := newTraceCmd()
	cmd.Flags().StringVar(&traceStrategy, "strategy", "first",
		"Initial search strategy (first, next, best)")
	cmd.Flags().Int64Var(&traceLimit, "limit", 0,
		"Heap growth cap in bytes (0 = default)")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <file|->",
		Short: "Execute an allocation trace against a fresh heap",
		Long: `The trace command reads allocation operations, one per line, runs them
against a new heap, and prints the block layout on every "describe" line.
Allocations are numbered from 1 and referenced by that number.

Operations:
  strategy first|next|best
  alloc <bytes>
  calloc <count> <bytes>
  realloc <id> <bytes>
  free <id>
  describe
  stats

Example:
  heapctl trace workload.txt
  echo "alloc 64" | heapctl trace - --strategy best --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args[0])
		},
	}
	return cmd
}

func runTrace(path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s, err := parseStrategy(traceStrategy)
	if err != nil {
		return err
	}
	h, err := heap.New(&heap.Config{Limit: traceLimit, Strategy: s})
	if err != nil {
		return err
	}
	defer h.Release()

	return executeTrace(h, in, os.Stdout)
}

// executeTrace runs the ops from r against h, writing results to w.
func executeTrace(h *heap.Heap, r io.Reader, w io.Writer) error {
	refs := map[int]heap.Ref{}
	nextID := 1

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		op := fields[0]
		switch {
		case op == "strategy" && len(fields) == 2:
			s, err := parseStrategy(fields[1])
			if err != nil {
				return traceErr(line, err)
			}
			h.SetStrategy(s)
			printVerbose("strategy -> %s\n", s)

		case op == "alloc" && len(fields) == 2:
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return traceErr(line, err)
			}
			ref, _, err := h.Alloc(n)
			if err != nil {
				fmt.Fprintf(w, "#%d = alloc %d -> %v\n", nextID, n, err)
			} else {
				refs[nextID] = ref
				fmt.Fprintf(w, "#%d = alloc %d -> ref %#x\n", nextID, n, ref)
			}
			nextID++

		case op == "calloc" && len(fields) == 3:
			count, err1 := strconv.Atoi(fields[1])
			n, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return traceErr(line, fmt.Errorf("bad calloc arguments"))
			}
			ref, _, err := h.Calloc(count, n)
			if err != nil {
				fmt.Fprintf(w, "#%d = calloc %d %d -> %v\n", nextID, count, n, err)
			} else {
				refs[nextID] = ref
				fmt.Fprintf(w, "#%d = calloc %d %d -> ref %#x\n", nextID, count, n, ref)
			}
			nextID++

		case op == "realloc" && len(fields) == 3:
			id, err1 := strconv.Atoi(fields[1])
			n, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return traceErr(line, fmt.Errorf("bad realloc arguments"))
			}
			old, ok := refs[id]
			if !ok {
				return traceErr(line, fmt.Errorf("unknown allocation #%d", id))
			}
			ref, _, err := h.Realloc(old, n)
			if err != nil {
				fmt.Fprintf(w, "#%d = realloc #%d %d -> %v\n", id, id, n, err)
			} else {
				refs[id] = ref
				fmt.Fprintf(w, "#%d = realloc #%d %d -> ref %#x\n", id, id, n, ref)
			}

		case op == "free" && len(fields) == 2:
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return traceErr(line, err)
			}
			ref, ok := refs[id]
			if !ok {
				return traceErr(line, fmt.Errorf("unknown allocation #%d", id))
			}
			delete(refs, id)
			if err := h.Free(ref); err != nil {
				fmt.Fprintf(w, "free #%d -> %v\n", id, err)
			} else {
				fmt.Fprintf(w, "free #%d\n", id)
			}

		case op == "describe" && len(fields) == 1:
			if err := writeLayout(w, h.Describe()); err != nil {
				return traceErr(line, err)
			}

		case op == "stats" && len(fields) == 1:
			if err := writeStats(w, h.Stats()); err != nil {
				return traceErr(line, err)
			}

		default:
			return traceErr(line, fmt.Errorf("unknown operation %q", op))
		}
	}
	return scanner.Err()
}

func traceErr(line int, err error) error {
	return fmt.Errorf("trace line %d: %w", line, err)
}

func parseStrategy(name string) (heap.Strategy, error) {
	switch strings.ToLower(name) {
	case "first", "first-fit":
		return heap.FirstFit, nil
	case "next", "next-fit":
		return heap.NextFit, nil
	case "best", "best-fit":
		return heap.BestFit, nil
	default:
		return heap.FirstFit, fmt.Errorf("unknown strategy %q (want first, next, or best)", name)
	}
}

func writeLayout(w io.Writer, blocks []heap.BlockInfo) error {
	if jsonOut {
		return printJSON(blocks)
	}
	fmt.Fprintf(w, "-----[ heap layout: %d blocks ]-----\n", len(blocks))
	for i, b := range blocks {
		state := "used"
		if b.Free {
			state = "free"
		}
		fmt.Fprintf(w, " [%2d] ref %#6x  size %6d  %s\n", i, b.Ref, b.Size, state)
	}
	return nil
}

func writeStats(w io.Writer, s heap.Stats) error {
	if jsonOut {
		return printJSON(s)
	}
	fmt.Fprintf(w, "allocs=%d frees=%d reallocs=%d callocs=%d\n",
		s.AllocCalls, s.FreeCalls, s.ReallocCalls, s.CallocCalls)
	fmt.Fprintf(w, "grows=%d growBytes=%d allocated=%d freed=%d\n",
		s.GrowCalls, s.GrowBytes, s.BytesAllocated, s.BytesFreed)
	fmt.Fprintf(w, "splits=%d mergeFwd=%d mergeBwd=%d cursorWraps=%d\n",
		s.SplitCount, s.CoalesceForward, s.CoalesceBackward, s.CursorWraps)
	return nil
}
