package config

import (
	"os"
	"strings"
)

type Config struct {
	CatalogHTTPAddr string
	CartHTTPAddr    string
	MirrorHTTPAddr  string
	RedisAddr       string
	KafkaBrokers    []string
	ServiceName     string
}

func Load() Config {
	return Config{
		CatalogHTTPAddr: getenv("CATALOG_HTTP_ADDR", ":8080"),
		CartHTTPAddr:    getenv("CART_HTTP_ADDR", ":8081"),
		MirrorHTTPAddr:  getenv("MIRROR_HTTP_ADDR", ":8082"),
		RedisAddr:       getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		ServiceName:     getenv("SERVICE_NAME", "f1-store"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
