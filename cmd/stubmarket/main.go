package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/barriohq/ordering-client/internal/stubmarket"
)

func main() {
	// .env is optional for the stub; it only carries the port.
	_ = godotenv.Load()

	handler := middleware.Logger(stubmarket.New().Router())

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "5189"
	}
	fmt.Printf("stub marketplace listening on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
