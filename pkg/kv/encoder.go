package kv

import (
	"fmt"

	"github.com/kelindar/binary"
	"github.com/lintang-b-s/chpath/pkg/concurrent"
	"github.com/lintang-b-s/chpath/pkg/datastructure"
)

// graphMeta is stored under <name>/meta, it tells how many batches to read back.
type graphMeta struct {
	VertexCount   uint32
	EdgeCount     uint32
	ShortcutCount uint32
	BatchSize     uint32
}

func (m graphMeta) vertexBatches() int {
	return batchCount(int(m.VertexCount), int(m.BatchSize))
}

func (m graphMeta) edgeBatches() int {
	return batchCount(int(m.EdgeCount), int(m.BatchSize))
}

func batchCount(n, batchSize int) int {
	return (n + batchSize - 1) / batchSize
}

// recordBatch is the value of one <name>/v/<batch> or <name>/e/<batch> key.
type recordBatch struct {
	Vertices []datastructure.VertexRecord
	Edges    []datastructure.EdgeRecord
}

func encodeMeta(meta graphMeta) ([]byte, error) {
	return binary.Marshal(meta)
}

func decodeMeta(bb []byte) (graphMeta, error) {
	var meta graphMeta
	err := binary.Unmarshal(bb, &meta)
	return meta, err
}

func encodeBatch(batch recordBatch) ([]byte, error) {
	bb, err := binary.Marshal(batch)
	if err != nil {
		return nil, err
	}
	return compress(bb)
}

func decodeBatch(bbCompressed []byte) (recordBatch, error) {
	var batch recordBatch
	bb, err := decompress(bbCompressed)
	if err != nil {
		return batch, err
	}
	err = binary.Unmarshal(bb, &batch)
	return batch, err
}

type encodedBatch struct {
	key   string
	value []byte
	err   error
}

func encodeJob(job concurrent.SaveGraphJobItem) encodedBatch {
	val, err := encodeBatch(recordBatch{Vertices: job.Vertices, Edges: job.Edges})
	if err != nil {
		err = fmt.Errorf("encode batch %s: %w", job.KeyStr, err)
	}
	return encodedBatch{key: job.KeyStr, value: val, err: err}
}
