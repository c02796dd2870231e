package main

import (
	"log"

	"github.com/ftahirops/ttypanel/collector"
	"github.com/ftahirops/ttypanel/config"
	"github.com/ftahirops/ttypanel/engine"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("ttypanel: %v", err)
	}
	loop := engine.New(cfg, collector.NewRegistry(cfg))
	if err := loop.Run(); err != nil {
		log.Fatalf("ttypanel: %v", err)
	}
}
