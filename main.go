package main

import (
	"log"

	_ "pokeproxy/docs"
	"pokeproxy/internal/app"
)

// @title PokeProxy API
// @version 1.0
// @description Pokemon streaming proxy. Receives binary Pokemon records over HTTP, authenticates them with an HMAC-SHA256 signature, routes them through an ordered rule set and forwards them as JSON to the matching downstream service.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
