package heap

import (
	"github.com/intuitivelabs/slog"

	"github.com/heapkit/heapkit/internal/format"
)

// Describe returns the ordered block sequence from the lowest address to the
// top. It exists for introspection and tests; a well-formed heap shows no two
// consecutive free entries and no gaps between blocks.
func (h *Heap) Describe() []BlockInfo {
	var blocks []BlockInfo
	for b := h.start; b != format.InvalidOffset; b = h.nextOf(b) {
		size, used := h.blockSize(b)
		blocks = append(blocks, BlockInfo{
			Ref:  payloadOf(b),
			Size: size,
			Free: !used,
		})
	}
	return blocks
}

// DumpStatus will write current status information in the log
func (h *Heap) DumpStatus() {
	const lev = slog.LDBG
	const prefix = "heap_status "

	if !Log.L(lev) {
		return
	}
	Log.LLog(lev, 0, prefix, "(%p):\n", h)
	if h == nil {
		return
	}
	Log.LLog(lev, 0, prefix, "strategy= %s, region size= %d, limit= %d\n",
		h.strategy, h.arena.Size(), h.arena.Limit())
	Log.LLog(lev, 0, prefix, "allocs= %d, frees= %d, grows= %d (%d bytes)\n",
		h.stats.AllocCalls, h.stats.FreeCalls,
		h.stats.GrowCalls, h.stats.GrowBytes)
	Log.LLog(lev, 0, prefix, "splits= %d, merges fwd= %d, merges bwd= %d\n",
		h.stats.SplitCount, h.stats.CoalesceForward, h.stats.CoalesceBackward)
	Log.LLog(lev, 0, prefix, "dumping all blocks:\n")
	i := 0
	for b := h.start; b != format.InvalidOffset; b = h.nextOf(b) {
		size, used := h.blockSize(b)
		state := "free"
		if used {
			state = "used"
		}
		Log.LLog(lev, 0, prefix,
			"   %3d.    header=%#6x payload=%#6x size=%6d %s\n",
			i, b, payloadOf(b), size, state)
		i++
	}
	Log.LLog(lev, 0, prefix, "-----------------------------\n")
}
