package models

type CalculateResponse struct {
	Operation string  `json:"operation"`
	Num1      int64   `json:"num1"`
	Num2      int64   `json:"num2"`
	Result    float64 `json:"result"`
}

type ErrorResponse struct {
	Error           string   `json:"error"`
	ValidOperations []string `json:"valid_operations,omitempty"`
}
