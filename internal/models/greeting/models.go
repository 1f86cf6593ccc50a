package models

type GreetingResponse struct {
	Message string `json:"message"`
}
