package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/kv"
)

var (
	graphFile  = flag.String("f", "solo_jogja.ch.json", "contracted graph dump (json) yang mau disimpan")
	dbDir      = flag.String("db", "./chpath_db", "badger directory")
	graphName  = flag.String("graph", "default", "key of the stored graph")
	batchSize  = flag.Int("batchsize", 1000, "vertices/edges per stored batch")
	workers    = flag.Int("workers", runtime.NumCPU(), "number of batch encoding workers")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		// ./bin/chpath-preprocessing -cpuprofile=chpathcpu.prof -memprofile=chpathmem.mprof
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("reading contracted graph file %s", *graphFile)
	f, err := os.Open(*graphFile)
	if err != nil {
		log.Fatal(err)
	}
	g, err := datastructure.ReadGraphDump(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("read %d vertices, %d edges, %d shortcuts", g.VertexCount(), g.EdgeCount(), g.ShortcutCount())
	recordMemProfile(memprofile, "read_graph_dump")

	kvDB, err := kv.OpenKVDB(*dbDir, kv.WithBatchSize(*batchSize), kv.WithWorkers(*workers))
	if err != nil {
		log.Fatal(err)
	}
	defer kvDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := kvDB.SaveGraph(ctx, *graphName, g); err != nil {
		log.Fatal(err)
	}
	recordMemProfile(memprofile, "save_graph")

	fmt.Printf("\n contracted graph %s saved to %s\n", *graphName, *dbDir)
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
