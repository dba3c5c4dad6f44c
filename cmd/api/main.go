package main

import (
	"context"
	"log"

	"github.com/cornerstore/cornerstore-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("cornerstore api exited: %v", err)
	}
}
