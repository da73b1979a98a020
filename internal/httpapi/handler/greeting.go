package handler

import (
	"net/http"
)

// GreetingMessage is the fixed message returned by GET /.
const GreetingMessage = "Hello from FastAPI on AKS!"

// greetingResponse is the JSON body for GET /.
type greetingResponse struct {
	Message string `json:"message"`
}

// Greeting handles GET /.
//
// @Summary      Greeting
// @Description  Returns a static greeting. No authentication required.
// @Tags         greeting
// @Produce      json
// @Success      200  {object}  greetingResponse
// @Router       / [get]
func Greeting(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"` + GreetingMessage + `"}`))
}
