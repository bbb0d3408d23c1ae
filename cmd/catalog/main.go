package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/valeriach30/Arquitectura/internal/catalog"
	"github.com/valeriach30/Arquitectura/internal/config"
	"github.com/valeriach30/Arquitectura/internal/httpx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	store := catalog.NewStore(catalog.SeedProducts()...)

	router := httpx.NewRouter()
	ch := &httpx.CatalogHandler{Store: store}
	ch.Register(router)

	srv := &http.Server{Addr: cfg.CatalogHTTPAddr, Handler: router}

	go func() {
		log.Printf("catalog API listening at %s", cfg.CatalogHTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
