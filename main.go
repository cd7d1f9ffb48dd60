package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"scorecard-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := handler.New(os.Getenv("BOOKING_BASE_URL"))

	log.Printf("Scorecard engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, srv.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
