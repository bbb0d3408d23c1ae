package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/valeriach30/Arquitectura/internal/cart"
	"github.com/valeriach30/Arquitectura/internal/config"
	"github.com/valeriach30/Arquitectura/internal/httpx"
	kafkax "github.com/valeriach30/Arquitectura/internal/kafka"
	"github.com/valeriach30/Arquitectura/internal/redisx"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis for event dedup
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	mirror := &cart.Mirror{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-cartmirror",
	}

	group := getenv("MIRROR_GROUP", "cartmirror")
	workers := mustAtoi(os.Getenv("MIRROR_WORKERS"), "1")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, cart.TopicCartUpdated, workers)

	go func() {
		log.Printf("cart mirror consumer started: group=%s topic=%s workers=%d", group, cart.TopicCartUpdated, workers)
		if err := cons.Start(ctx, mirror.HandleCartUpdated); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	router := httpx.NewRouter()
	h := &httpx.MirrorHandler{Mirror: mirror}
	h.Register(router)

	srv := &http.Server{Addr: cfg.MirrorHTTPAddr, Handler: router}

	go func() {
		log.Printf("cart mirror listening at %s", cfg.MirrorHTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	cancel()
	time.Sleep(500 * time.Millisecond)
}
