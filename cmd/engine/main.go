package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	_ "github.com/lintang-b-s/chpath/docs"
	"github.com/lintang-b-s/chpath/pkg/engine/expansion"
	"github.com/lintang-b-s/chpath/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/chpath/pkg/kv"
	"github.com/lintang-b-s/chpath/pkg/server/rest"
	"github.com/lintang-b-s/chpath/pkg/server/rest/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	dbDir      = flag.String("db", "./chpath_db", "badger directory")
	graphName  = flag.String("graph", "default", "key of the stored graph")
	maxDepth   = flag.Int("maxdepth", expansion.DefaultMaxDepth, "maximum shortcut nesting depth before a path is rejected")
	workers    = flag.Int("workers", runtime.NumCPU(), "number of workers for batch expansion")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

//	@title			chpath lintangbs API
//	@version		1.0
//	@description	contraction hierarchy path expansion engine in go. Unpacks shortcuts of a compressed path back into the original road edges.

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	kvDB, err := kv.OpenKVDB(*dbDir)
	if err != nil {
		log.Fatal(err)
	}
	defer kvDB.Close()

	g, err := kvDB.LoadGraph(context.Background(), *graphName)
	if err != nil {
		log.Fatal(err)
	}
	recordMemProfile(memprofile, "load_contracted_graph")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // url ke API definition
	))

	expander := expansion.NewExpander(g, expansion.WithMaxDepth(*maxDepth))
	routingAlgorithm := routingalgorithm.NewRouteAlgorithm(g)

	pathSvc := service.NewPathService(g, expander, routingAlgorithm, *workers)
	recordMemProfile(memprofile, "service_init")

	rest.PathsRouter(r, pathSvc, m)

	fmt.Printf("\n contraction hierarchy %s loaded: %d vertices, %d edges, %d shortcuts", *graphName,
		g.VertexCount(), g.EdgeCount(), g.ShortcutCount())
	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
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
