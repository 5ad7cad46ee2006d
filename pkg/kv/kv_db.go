package kv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/lintang-b-s/chpath/pkg/concurrent"
	"github.com/lintang-b-s/chpath/pkg/datastructure"
)

var (
	ErrGraphNotFound = errors.New("graph not found")
)

const defaultBatchSize = 1000

type KVDB struct {
	db        *badger.DB
	batchSize int
	workers   int
}

type Option func(*KVDB)

func WithBatchSize(size int) Option {
	return func(k *KVDB) {
		if size > 0 {
			k.batchSize = size
		}
	}
}

func WithWorkers(workers int) Option {
	return func(k *KVDB) {
		if workers > 0 {
			k.workers = workers
		}
	}
}

func NewKVDB(db *badger.DB, opts ...Option) *KVDB {
	k := &KVDB{db: db, batchSize: defaultBatchSize, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// OpenKVDB opens badger at dir, an empty dir keeps everything in memory.
func OpenKVDB(dir string, opts ...Option) (*KVDB, error) {
	badgerOpts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", dir, err)
	}
	return NewKVDB(db, opts...), nil
}

func metaKey(name string) []byte {
	return []byte(name + "/meta")
}

func vertexBatchKey(name string, batch int) string {
	return fmt.Sprintf("%s/v/%08d", name, batch)
}

func edgeBatchKey(name string, batch int) string {
	return fmt.Sprintf("%s/e/%08d", name, batch)
}

// SaveGraph stores g under name, replacing whatever was stored under name before.
func (k *KVDB) SaveGraph(ctx context.Context, name string, g *datastructure.Graph) error {
	log.Printf("saving contracted graph %s to key-value db...", name)
	if err := k.db.DropPrefix([]byte(name + "/")); err != nil {
		return fmt.Errorf("drop old graph %s: %w", name, err)
	}

	vertices, edges := g.Records()
	meta := graphMeta{
		VertexCount:   uint32(len(vertices)),
		EdgeCount:     uint32(len(edges)),
		ShortcutCount: uint32(g.ShortcutCount()),
		BatchSize:     uint32(k.batchSize),
	}

	jobCount := meta.vertexBatches() + meta.edgeBatches()
	workers := concurrent.NewWorkerPool[concurrent.SaveGraphJobItem, encodedBatch](k.workers, jobCount)
	for i := 0; i < meta.vertexBatches(); i++ {
		lo, hi := i*k.batchSize, min((i+1)*k.batchSize, len(vertices))
		workers.AddJob(concurrent.SaveGraphJobItem{KeyStr: vertexBatchKey(name, i), Vertices: vertices[lo:hi]})
	}
	for i := 0; i < meta.edgeBatches(); i++ {
		lo, hi := i*k.batchSize, min((i+1)*k.batchSize, len(edges))
		workers.AddJob(concurrent.SaveGraphJobItem{KeyStr: edgeBatchKey(name, i), Edges: edges[lo:hi]})
	}
	workers.Close()
	workers.Start(encodeJob)
	workers.Wait()

	batches := make([]encodedBatch, 0, jobCount)
	for res := range workers.CollectResults() {
		if res.err != nil {
			return res.err
		}
		batches = append(batches, res)
	}

	if err := k.saveBatches(ctx, batches); err != nil {
		return err
	}

	// meta terakhir, graph yang setengah tersimpan tidak bisa di load
	metaVal, err := encodeMeta(meta)
	if err != nil {
		return err
	}
	if err := k.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey(name), metaVal)
	}); err != nil {
		return err
	}

	log.Printf("saving contracted graph %s done: %d vertices, %d edges, %d shortcuts", name,
		meta.VertexCount, meta.EdgeCount, meta.ShortcutCount)
	return nil
}

func (k *KVDB) saveBatches(ctx context.Context, batches []encodedBatch) error {
	batch := k.db.NewWriteBatch()
	defer batch.Cancel()

	for _, data := range batches {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if err := batch.Set([]byte(data.key), data.value); err != nil {
			return err
		}
	}

	if err := batch.Flush(); err != nil {
		log.Printf("error saving graph batches: %v", err)
		return err
	}
	log.Printf("saving %d batches done", len(batches))
	return nil
}

func (k *KVDB) get(key []byte) ([]byte, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

// LoadGraph reads back the graph saved under name.
func (k *KVDB) LoadGraph(ctx context.Context, name string) (*datastructure.Graph, error) {
	log.Printf("loading contracted graph %s...", name)
	metaVal, err := k.get(metaKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrGraphNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(metaVal)
	if err != nil {
		return nil, fmt.Errorf("decode meta of graph %s: %w", name, err)
	}

	vertices := make([]datastructure.VertexRecord, 0, meta.VertexCount)
	for i := 0; i < meta.vertexBatches(); i++ {
		batch, err := k.loadBatch(ctx, vertexBatchKey(name, i))
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, batch.Vertices...)
	}

	edges := make([]datastructure.EdgeRecord, 0, meta.EdgeCount)
	for i := 0; i < meta.edgeBatches(); i++ {
		batch, err := k.loadBatch(ctx, edgeBatchKey(name, i))
		if err != nil {
			return nil, err
		}
		edges = append(edges, batch.Edges...)
	}

	if len(vertices) != int(meta.VertexCount) || len(edges) != int(meta.EdgeCount) {
		return nil, fmt.Errorf("graph %s is incomplete: %d of %d vertices, %d of %d edges", name,
			len(vertices), meta.VertexCount, len(edges), meta.EdgeCount)
	}

	g, err := datastructure.GraphFromRecords(vertices, edges)
	if err != nil {
		return nil, err
	}
	log.Printf("loading contracted graph %s done", name)
	return g, nil
}

func (k *KVDB) loadBatch(ctx context.Context, key string) (recordBatch, error) {
	select {
	case <-ctx.Done():
		return recordBatch{}, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	val, err := k.get([]byte(key))
	if err != nil {
		return recordBatch{}, fmt.Errorf("read batch %s: %w", key, err)
	}
	batch, err := decodeBatch(val)
	if err != nil {
		return recordBatch{}, fmt.Errorf("decode batch %s: %w", key, err)
	}
	return batch, nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
