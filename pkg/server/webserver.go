package server

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/catalog"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/tracking"
)

var (
	noListings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_listings_total",
		Help: "The total number of processed listing requests",
	})
	noSidebars = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_sidebars_total",
		Help: "The total number of classified sidebar renders",
	})
	noBrandLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_brand_lookups_total",
		Help: "The total number of brand feed lookups",
	})
)

type WebServer struct {
	Catalog  *catalog.Client
	Tracking tracking.Tracking
	PageSize int
}

func defaultHeaders(w http.ResponseWriter, r *http.Request, cacheTime string) {
	w.Header().Set("Cache-Control", "private, stale-while-revalidate="+cacheTime)
	genericHeaders(w, r)
}

func genericHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
}

func publicHeaders(w http.ResponseWriter, r *http.Request, cacheTime string) {
	w.Header().Set("Cache-Control", "public, max-age="+cacheTime)
	genericHeaders(w, r)
}

func writeJson(w http.ResponseWriter, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	srv := http.NewServeMux()

	srv.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	srv.HandleFunc("/listing", ws.Listing)
	srv.HandleFunc("/sidebar", ws.Sidebar)
	srv.HandleFunc("/brands", ws.Brands)
	srv.HandleFunc("/filters", ws.FilterDefaults)
	srv.HandleFunc("/track/click", ws.TrackClick)

	return srv
}
