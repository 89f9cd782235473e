package datastructure

// Item constrains priority queue payloads to integer-like ids so exact
// rank ties can be broken deterministically by the smaller item.
type Item interface {
	~int | ~int32 | ~int64
}

type Rank interface {
	int | float64
}

type PriorityQueueNode[T Item, G Rank] struct {
	rank  G
	index int
	item  T
}

func NewPriorityQueueNode[T Item, G Rank](rank G, item T) *PriorityQueueNode[T, G] {
	return &PriorityQueueNode[T, G]{rank: rank, item: item}
}

func (n *PriorityQueueNode[T, G]) Rank() G {
	return n.rank
}

func (n *PriorityQueueNode[T, G]) Item() T {
	return n.item
}

// MinPriorityQueue implements heap.Interface; use it through container/heap.
type MinPriorityQueue[T Item, G Rank] []*PriorityQueueNode[T, G]

func NewMinPriorityQueue[T Item, G Rank]() *MinPriorityQueue[T, G] {
	return &MinPriorityQueue[T, G]{}
}

func (pq MinPriorityQueue[Item, Rank]) Len() int {
	return len(pq)
}

func (pq MinPriorityQueue[Item, Rank]) Less(i, j int) bool {
	if pq[i].rank != pq[j].rank {
		return pq[i].rank < pq[j].rank
	}
	return pq[i].item < pq[j].item
}

func (pq MinPriorityQueue[Item, Rank]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *MinPriorityQueue[Item, Rank]) Push(x interface{}) {
	n := len(*pq)
	no := x.(*PriorityQueueNode[Item, Rank])
	no.index = n
	*pq = append(*pq, no)
}

func (pq *MinPriorityQueue[Item, Rank]) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}
