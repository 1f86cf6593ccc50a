package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/datatweets/greeting-service/internal/transport/calculator"
	"github.com/datatweets/greeting-service/internal/transport/greeting"
	"github.com/datatweets/greeting-service/internal/transport/middleware"
	"github.com/datatweets/greeting-service/internal/transport/system"
	"github.com/gorilla/mux"
)

type App struct {
	greet  greeting.Greeting
	sys    system.System
	calc   calculator.Calculator
	server *http.Server
}

func New(greet greeting.Greeting, sys system.System, calc calculator.Calculator, host string, port int) *App {
	a := &App{
		greet: greet,
		sys:   sys,
		calc:  calc,
	}
	a.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: a.Router(),
	}
	return a
}

// Router builds the full handler set without binding a socket, so the
// routing table is testable on its own.
func (a *App) Router() *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)

	r.HandleFunc("/hello/{name}", a.greet.Hello).Methods("GET")
	r.HandleFunc("/goodbye/{name}", a.greet.Goodbye).Methods("GET")
	r.HandleFunc("/health", a.sys.Health).Methods("GET")
	r.HandleFunc("/status", a.sys.Status).Methods("GET")

	// non-numeric operands never reach the handler, the route regex
	// rejects them with a 404
	r.HandleFunc("/calculate/{operation}/{num1:-?[0-9]+}/{num2:-?[0-9]+}", a.calc.Calculate).Methods("GET")

	return r
}

func (a *App) MustRunAPI() {
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("service startup error: " + err.Error())
	}
}

func (a *App) Stop(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
