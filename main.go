package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/catalog"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/common"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/server"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var catalogUrl = os.Getenv("CATALOG_URL")
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var listenAddress = ":8080"
var debugAddress = ":8081"

func main() {
	flag.Parse()

	if catalogUrl == "" {
		log.Fatalf("No catalog url provided")
	}

	client := catalog.NewClient(catalogUrl)
	if redisUrl != "" {
		client.Cache = catalog.NewFeedCache(redisUrl, redisPassword, 0)
		log.Printf("Feed cache enabled, url: %s", redisUrl)
	}

	srv := &server.WebServer{
		Catalog:  client,
		PageSize: 12,
	}

	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
	}

	go func() {
		debugMux := http.NewServeMux()
		debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		debugMux.Handle("/metrics", promhttp.Handler())
		if enableProfiling != nil && *enableProfiling {
			log.Println("Profiling enabled")
			debugMux.HandleFunc("/debug/pprof/", pprof.Index)
			debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		}
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{
		Addr:    listenAddress,
		Handler: mux,
	}, timeouts)

	common.RunServerWithShutdown(httpServer, "storefront api", timeouts.Shutdown, func(ctx context.Context) error {
		if client.Cache != nil {
			client.Cache.Close()
		}
		return nil
	})
}
