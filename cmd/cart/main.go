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

	"github.com/valeriach30/Arquitectura/internal/cart"
	"github.com/valeriach30/Arquitectura/internal/config"
	"github.com/valeriach30/Arquitectura/internal/httpx"
	kafkax "github.com/valeriach30/Arquitectura/internal/kafka"
	"github.com/valeriach30/Arquitectura/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis holds the persisted cart mirror
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for cart.updated
	prod := kafkax.NewProducer(cfg.KafkaBrokers, cart.TopicCartUpdated, 1024)
	prod.Start(ctx)

	svc := cart.New(ctx, &cart.RedisStorage{Client: rdb})
	unsubscribe := svc.Subscribe(func(c cart.Cart) {
		log.Printf("cart updated: items=%d total=%.2f", c.TotalItems, c.TotalPrice)
	})
	defer unsubscribe()

	router := httpx.NewRouter()
	h := &httpx.CartHandler{
		Service:  svc,
		Producer: prod,
		Name:     cfg.ServiceName + "-cart",
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.CartHTTPAddr, Handler: router}

	go func() {
		log.Printf("cart service listening at %s", cfg.CartHTTPAddr)
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
	prod.Close()      // stop intake, flush queued events
	prod.WaitClosed() // drain
}
