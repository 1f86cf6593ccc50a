package greeting

import (
	"encoding/json"
	"log"
	"net/http"

	models "github.com/datatweets/greeting-service/internal/models/greeting"
	"github.com/gorilla/mux"
)

type Greeting struct{}

func New() *Greeting {
	return &Greeting{}
}

// /hello/{name}
func (g *Greeting) Hello(w http.ResponseWriter, r *http.Request) {
	const op = "greeting.Hello"

	name := mux.Vars(r)["name"]

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.GreetingResponse{Message: "Hello, " + name + "!"}); err != nil {
		log.Printf("%s: error encoding response, error: %s\n", op, err)
	}
}

// /goodbye/{name}
func (g *Greeting) Goodbye(w http.ResponseWriter, r *http.Request) {
	const op = "greeting.Goodbye"

	name := mux.Vars(r)["name"]

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.GreetingResponse{Message: "Goodbye, " + name + "! See you soon!"}); err != nil {
		log.Printf("%s: error encoding response, error: %s\n", op, err)
	}
}
