package corpus

// fileHeap is a max-heap of pending ingest files ordered by
// ByDescendingSize (largest file first, then path ascending). It is
// adapted from a MiniSat-style activity heap with percolate up/down,
// keyed on file size instead of variable activity, so that a bounded
// worker pool can always be told "hand me the next file in strict
// descending order" without re-sorting the remaining set on every pull.
type fileHeap struct {
	content []File
}

func newFileHeap(files []File) *fileHeap {
	h := &fileHeap{content: make([]File, 0, len(files))}
	for _, f := range files {
		h.insert(f)
	}
	return h
}

func fileLess(a, b File) bool {
	if a.Size != b.Size {
		return a.Size > b.Size
	}
	return a.Path < b.Path
}

func heapLeft(i int) int   { return i*2 + 1 }
func heapRight(i int) int  { return (i + 1) * 2 }
func heapParent(i int) int { return (i - 1) >> 1 }

func (h *fileHeap) percolateUp(i int) {
	x := h.content[i]
	p := heapParent(i)
	for i != 0 && fileLess(x, h.content[p]) {
		h.content[i] = h.content[p]
		i = p
		p = heapParent(p)
	}
	h.content[i] = x
}

func (h *fileHeap) percolateDown(i int) {
	x := h.content[i]
	for heapLeft(i) < len(h.content) {
		child := heapLeft(i)
		if heapRight(i) < len(h.content) && fileLess(h.content[heapRight(i)], h.content[heapLeft(i)]) {
			child = heapRight(i)
		}
		if !fileLess(h.content[child], x) {
			break
		}
		h.content[i] = h.content[child]
		i = child
	}
	h.content[i] = x
}

func (h *fileHeap) insert(f File) {
	h.content = append(h.content, f)
	h.percolateUp(len(h.content) - 1)
}

func (h *fileHeap) empty() bool { return len(h.content) == 0 }

// removeMax pops and returns the largest remaining file.
func (h *fileHeap) removeMax() File {
	x := h.content[0]
	last := len(h.content) - 1
	h.content[0] = h.content[last]
	h.content = h.content[:last]
	if len(h.content) > 1 {
		h.percolateDown(0)
	}
	return x
}

// orderedFiles drains h into a slice in descending order, consuming h.
func orderedFiles(h *fileHeap) []File {
	out := make([]File, 0, len(h.content))
	for !h.empty() {
		out = append(out, h.removeMax())
	}
	return out
}
