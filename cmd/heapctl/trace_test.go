package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heapkit/heapkit/heap"
)

func newTraceHeap(t *testing.T) *heap.Heap {
	t.Helper()
	h, err := heap.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Release() })
	return h
}

func TestExecuteTrace_BasicWorkload(t *testing.T) {
	h := newTraceHeap(t)
	in := strings.NewReader(`
# comment and blank lines are skipped
alloc 64
alloc 32
free 1
describe
stats
`)
	var out bytes.Buffer
	require.NoError(t, executeTrace(h, in, &out))

	got := out.String()
	assert.Contains(t, got, "#1 = alloc 64 -> ref")
	assert.Contains(t, got, "#2 = alloc 32 -> ref")
	assert.Contains(t, got, "free #1")
	assert.Contains(t, got, "heap layout: 2 blocks")
	assert.Contains(t, got, "allocs=2 frees=1")
}

func TestExecuteTrace_ReallocKeepsID(t *testing.T) {
	h := newTraceHeap(t)
	in := strings.NewReader("alloc 16\nrealloc 1 64\nfree 1\n")
	var out bytes.Buffer
	require.NoError(t, executeTrace(h, in, &out))

	assert.Contains(t, out.String(), "#1 = realloc #1 64 -> ref")
	assert.Contains(t, out.String(), "free #1")
}

func TestExecuteTrace_StrategySwitch(t *testing.T) {
	h := newTraceHeap(t)
	in := strings.NewReader("strategy best\nalloc 8\n")
	var out bytes.Buffer
	require.NoError(t, executeTrace(h, in, &out))

	assert.Equal(t, heap.BestFit, h.Strategy())
}

func TestExecuteTrace_AllocFailureIsReportedInline(t *testing.T) {
	h := newTraceHeap(t)
	in := strings.NewReader("alloc 0\nalloc 8\n")
	var out bytes.Buffer
	require.NoError(t, executeTrace(h, in, &out), "op failures must not abort the trace")

	assert.Contains(t, out.String(), "#1 = alloc 0 -> ")
	assert.Contains(t, out.String(), "#2 = alloc 8 -> ref")
}

func TestExecuteTrace_UnknownID(t *testing.T) {
	h := newTraceHeap(t)
	var out bytes.Buffer

	err := executeTrace(h, strings.NewReader("free 7\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace line 1")
	assert.Contains(t, err.Error(), "unknown allocation #7")
}

func TestExecuteTrace_UnknownOperation(t *testing.T) {
	h := newTraceHeap(t)
	var out bytes.Buffer

	err := executeTrace(h, strings.NewReader("alloc 8\nmunmap 1\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace line 2")
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]heap.Strategy{
		"first": heap.FirstFit, "first-fit": heap.FirstFit,
		"next": heap.NextFit, "NEXT": heap.NextFit,
		"best": heap.BestFit, "best-fit": heap.BestFit,
	} {
		s, err := parseStrategy(in)
		require.NoError(t, err, "parseStrategy(%q)", in)
		assert.Equal(t, want, s, "parseStrategy(%q)", in)
	}

	_, err := parseStrategy("worst")
	assert.Error(t, err)
}
