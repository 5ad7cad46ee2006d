package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func generateRandomInteger(min int, max int) int {
	return min + rand.Intn(max-min)
}

func TestPriorityQueue(t *testing.T) {
	pq := NewMinHeap[int32]()

	for i := 0; i < 10000; i++ {
		item := PriorityQueueNode[int32]{Rank: float64(generateRandomInteger(1, 10000)), Item: int32(i)}
		pq.Insert(item)

		if (i+1)%100 == 0 {
			item.Rank = float64(generateRandomInteger(0, int(item.Rank)))
			err := pq.DecreaseKey(item)
			assert.NoError(t, err)
		}
	}
	assert.Equal(t, 10000, pq.Size())

	prevItem, err := pq.ExtractMin()
	assert.NoError(t, err)
	for i := 1; i < 10000; i++ {
		item, err := pq.ExtractMin()
		assert.NoError(t, err)
		if prevItem.Rank > item.Rank {
			t.Errorf("PriorityQueue is not sorted")
		}
		prevItem = item
	}

	_, err = pq.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = pq.GetMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
}

func TestPriorityQueueDecreaseKey(t *testing.T) {
	pq := NewMinHeap[VertexID]()
	pq.Insert(PriorityQueueNode[VertexID]{Rank: 10, Item: 1})
	pq.Insert(PriorityQueueNode[VertexID]{Rank: 5, Item: 2})
	pq.Insert(PriorityQueueNode[VertexID]{Rank: 7, Item: 3})

	assert.NoError(t, pq.DecreaseKey(PriorityQueueNode[VertexID]{Rank: 1, Item: 1}))
	assert.ErrorIs(t, pq.DecreaseKey(PriorityQueueNode[VertexID]{Rank: 100, Item: 2}), ErrRankNotDecrease)
	assert.ErrorIs(t, pq.DecreaseKey(PriorityQueueNode[VertexID]{Rank: 1, Item: 9}), ErrItemNotInHeap)

	// inserting an item twice keeps one entry.
	assert.NoError(t, pq.Insert(PriorityQueueNode[VertexID]{Rank: 2, Item: 3}))
	assert.Equal(t, 3, pq.Size())
	assert.ErrorIs(t, pq.Insert(PriorityQueueNode[VertexID]{Rank: 50, Item: 3}), ErrRankNotDecrease)
	assert.Equal(t, 3, pq.Size())

	min, err := pq.GetMin()
	assert.NoError(t, err)
	assert.Equal(t, VertexID(1), min.Item)

	order := []VertexID{}
	for pq.Size() > 0 {
		item, _ := pq.ExtractMin()
		order = append(order, item.Item)
	}
	assert.Equal(t, []VertexID{1, 3, 2}, order)
	assert.False(t, pq.Contains(1))
}
