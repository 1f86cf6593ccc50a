package calculator

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	errs "github.com/datatweets/greeting-service/internal/errs/calculator"
	models "github.com/datatweets/greeting-service/internal/models/calculator"
	"github.com/gorilla/mux"
)

// ValidOperations is the accepted set of {operation} path values; it is
// echoed in the invalid-operation error payload.
var ValidOperations = []string{"add", "subtract", "multiply", "divide"}

type Calculator struct{}

func New() *Calculator {
	return &Calculator{}
}

// /calculate/{operation}/{num1}/{num2}
//
// The operation is validated before anything is computed and exactly one
// branch is evaluated; the zero-divisor check runs only for divide.
func (c *Calculator) Calculate(w http.ResponseWriter, r *http.Request) {
	const op = "calculator.Calculate"

	vars := mux.Vars(r)

	num1, err := strconv.ParseInt(vars["num1"], 10, 64)
	if err != nil {
		// the route regex admits the segment but the value does not fit
		// in int64; same routing-level outcome as a malformed operand
		log.Printf("%s: operand out of range: %s\n", op, vars["num1"])
		http.NotFound(w, r)
		return
	}

	num2, err := strconv.ParseInt(vars["num2"], 10, 64)
	if err != nil {
		log.Printf("%s: operand out of range: %s\n", op, vars["num2"])
		http.NotFound(w, r)
		return
	}

	operation := vars["operation"]
	if !isValidOperation(operation) {
		log.Printf("%s: %s: %s\n", op, errs.ErrInvalidOperation, operation)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: errs.ErrInvalidOperation.Error(), ValidOperations: ValidOperations}); err != nil {
			log.Printf("%s: error encoding response, error: %s\n", op, err)
		}
		return
	}

	if operation == "divide" && num2 == 0 {
		log.Printf("%s: %s\n", op, errs.ErrDivisionByZero)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: errs.ErrDivisionByZero.Error()}); err != nil {
			log.Printf("%s: error encoding response, error: %s\n", op, err)
		}
		return
	}

	var result float64
	switch operation {
	case "add":
		result = float64(num1 + num2)
	case "subtract":
		result = float64(num1 - num2)
	case "multiply":
		result = float64(num1 * num2)
	case "divide":
		result = float64(num1) / float64(num2)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.CalculateResponse{Operation: operation, Num1: num1, Num2: num2, Result: result}); err != nil {
		log.Printf("%s: error encoding response, error: %s\n", op, err)
		return
	}

	log.Printf("%s: %s(%d, %d) = %v\n", op, operation, num1, num2, result)
}

func isValidOperation(operation string) bool {
	for _, v := range ValidOperations {
		if operation == v {
			return true
		}
	}
	return false
}
