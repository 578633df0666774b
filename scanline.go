/*******************************************************************************
* Purpose   :  Scanline queue - pending Y coordinates, ascending            *
* License   :  http://www.boost.org/LICENSE_1_0.txt                         *
*******************************************************************************/

package clipper

import "container/heap"

// scanlineQueue is a min-heap of pending scanbeam Y coordinates. The
// original source backs this with std::priority_queue; no example repo in
// the retrieval pack carries a third-party priority-queue library, so this
// stays on container/heap (see DESIGN.md).
type scanlineQueue struct {
	h scanlineHeap
}

func newScanlineQueue() *scanlineQueue {
	return &scanlineQueue{}
}

// insert pushes y if it is not already queued (duplicate Ys - e.g. two
// local minima sharing a bottom - collapse to one scanbeam).
func (q *scanlineQueue) insert(y int64) {
	for _, v := range q.h {
		if v == y {
			return
		}
	}
	heap.Push(&q.h, y)
}

func (q *scanlineQueue) pop() (int64, bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return heap.Pop(&q.h).(int64), true
}

func (q *scanlineQueue) peek() (int64, bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return q.h[0], true
}

func (q *scanlineQueue) empty() bool {
	return len(q.h) == 0
}

type scanlineHeap []int64

func (h scanlineHeap) Len() int            { return len(h) }
func (h scanlineHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h scanlineHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scanlineHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *scanlineHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
