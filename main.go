package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/domainlens/domainlens/config"
	"github.com/domainlens/domainlens/handle_resources"
	"github.com/domainlens/domainlens/lookup_tools"
	"github.com/domainlens/domainlens/mcp_tools"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// orchestrator is shared between the HTTP handler and the MCP server.
var orchestrator *lookup_tools.Orchestrator

func handler(w http.ResponseWriter, r *http.Request) {
	if len(config.ConcurrencyLimiter) == config.RateLimit {
		log.Printf("Rate limit reached, waiting for a slot to become available...\n")
	}
	config.ConcurrencyLimiter <- struct{}{}
	config.Wg.Add(1)
	defer func() {
		config.Wg.Done()
		<-config.ConcurrencyLimiter
	}()

	resource := strings.TrimPrefix(r.URL.Path, "/")
	resource = strings.ToLower(resource)

	handle_resources.HandleDomain(r.Context(), w, orchestrator, resource)
}

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the Model Context Protocol over stdio instead of HTTP")
	flag.Parse()

	config.Load()
	orchestrator = lookup_tools.NewOrchestrator(config.CacheManager, config.CacheExpiration)

	if *mcpMode {
		runMCP()
		return
	}
	runHTTP()
}

func runMCP() {
	// Keep stdout clean for the protocol stream.
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcp_tools.Serve(ctx, orchestrator, config.Version); err != nil && ctx.Err() == nil {
		log.Fatal("MCP server failed:", err)
	}
}

func runHTTP() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handle_resources.HandleHealth)
	mux.HandleFunc("/ready", handle_resources.HandleReady)
	mux.HandleFunc("/info", handle_resources.HandleInfo)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: mux,
	}

	go func() {
		fmt.Printf("Server is listening on port %d...\n", config.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			fmt.Println("Server failed to start:", err)
			os.Exit(1)
		}
	}()

	// Wait for a shutdown signal, then let in-flight lookups finish before
	// closing the server.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Received shutdown signal, waiting for all queries to complete...")
	config.Wg.Wait()

	log.Println("All queries completed. Shutting down server...")
	server.Shutdown(context.Background())
	config.RedisClient.Close()
}
