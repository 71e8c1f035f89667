package server

import (
	"context"
	_ "embed"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/dashboard"
)

//go:embed web/index.html
var indexHTML []byte

// Options carries the selection lists and defaults the UI offers.
type Options struct {
	PopularStocks []string
	Benchmarks    map[string]string // label -> symbol
	DefaultFrom   time.Time
	DefaultTo     time.Time
}

// Server exposes the dashboard over HTTP.
type Server struct {
	addr string
	svc  *dashboard.Service
	opts Options
	srv  *http.Server
}

// NewServer creates a new Server.
func NewServer(addr string, svc *dashboard.Service, opts Options) *Server {
	return &Server{addr: addr, svc: svc, opts: opts}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/symbols", s.handleSymbols)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] http shutdown: %v", err)
		}
	}()

	log.Printf("[INFO] http server listening on %s", s.addr)
	err = s.srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}
