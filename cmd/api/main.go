// Command api runs the CareerCompass HTTP server.
package main

import (
	"log"

	"CareerCompass-backend/internal/server"
)

// @title CareerCompass API
// @version 1.0
// @description Career services backend: job application tracking, career plans, resume upload and dashboard analytics.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
