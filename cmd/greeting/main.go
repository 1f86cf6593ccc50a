package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/datatweets/greeting-service/internal/app"
	"github.com/datatweets/greeting-service/internal/config"
	"github.com/datatweets/greeting-service/internal/transport/calculator"
	"github.com/datatweets/greeting-service/internal/transport/greeting"
	"github.com/datatweets/greeting-service/internal/transport/system"
)

func main() {
	cfg := config.MustLoad()

	log.Printf("config has been initialized: %v\n", cfg)

	greet := greeting.New()
	sys := system.New()
	calc := calculator.New()

	application := app.New(*greet, *sys, *calc, cfg.Host, cfg.Port)
	go application.MustRunAPI()

	log.Printf("service is running, addr: %s:%d\n", cfg.Host, cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stop

	log.Printf("stopping service, signal: %v\n", sign)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := application.Stop(ctx); err != nil {
		log.Printf("service shutdown error: %s\n", err)
	}

	log.Println("service stopped")
}
