// Command send builds a Pokemon record, signs it with the shared
// secret and posts it to a running proxy. It is the quickest way to
// exercise a rules file end to end:
//
//	send                          # send the default Pikachu
//	send -legendary               # send Mewtwo
//	send -powerful                # send Dragonite
//	send -name Bulbasaur -hp 45   # send a custom record
//
// The secret comes from -secret or the POKEPROXY_SECRET environment
// variable, base64-encoded as the server expects it.
package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	commonhttp "pokeproxy/internal/common/http"
	"pokeproxy/internal/pokemon"
	"pokeproxy/internal/signature"
)

func main() {
	var (
		name      = flag.String("name", "Pikachu", "Pokemon name")
		number    = flag.Uint64("number", 25, "Pokemon number")
		attack    = flag.Uint64("attack", 55, "Attack stat")
		hp        = flag.Uint64("hp", 35, "Hit points")
		legendary = flag.Bool("legendary", false, "Send a legendary (Mewtwo)")
		powerful  = flag.Bool("powerful", false, "Send a powerful Pokemon (Dragonite)")
		proxyURL  = flag.String("proxy-url", "http://localhost:8080", "Proxy base URL")
		secretB64 = flag.String("secret", "", "Base64 secret (defaults to POKEPROXY_SECRET)")
	)
	flag.Parse()

	if *secretB64 == "" {
		*secretB64 = os.Getenv("POKEPROXY_SECRET")
	}
	if *secretB64 == "" {
		fmt.Fprintln(os.Stderr, "error: no secret; pass -secret or set POKEPROXY_SECRET")
		os.Exit(1)
	}

	secret, err := base64.StdEncoding.DecodeString(*secretB64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: secret is not valid base64: %v\n", err)
		os.Exit(1)
	}

	rec := buildRecord(*name, *number, *attack, *hp, *legendary, *powerful)

	if err := send(rec, *proxyURL, secret); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildRecord assembles the record to send. The legendary and powerful
// shortcuts win over the individual stat flags.
func buildRecord(name string, number, attack, hp uint64, legendary, powerful bool) *pokemon.Record {
	switch {
	case legendary:
		return &pokemon.Record{
			Number:     150,
			Name:       "Mewtwo",
			TypeOne:    "Psychic",
			HitPoints:  106,
			Attack:     110,
			Defense:    40,
			Speed:      90,
			Generation: 1,
			Legendary:  true,
		}
	case powerful:
		return &pokemon.Record{
			Number:     149,
			Name:       "Dragonite",
			TypeOne:    "Dragon",
			TypeTwo:    "Flying",
			HitPoints:  91,
			Attack:     134,
			Defense:    40,
			Speed:      90,
			Generation: 1,
		}
	default:
		return &pokemon.Record{
			Number:     number,
			Name:       name,
			TypeOne:    "Electric",
			HitPoints:  hp,
			Attack:     attack,
			Defense:    40,
			Speed:      90,
			Generation: 1,
		}
	}
}

func send(rec *pokemon.Record, proxyURL string, secret []byte) error {
	body := pokemon.Marshal(rec)
	verifier := signature.NewVerifier(secret, nil)

	fmt.Printf("Sending %s (#%d), attack %d, hp %d, legendary %t\n",
		rec.Name, rec.Number, rec.Attack, rec.HitPoints, rec.Legendary)

	req, err := http.NewRequest(http.MethodPost, proxyURL+"/stream", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(verifier.Header(), verifier.Sign(body))

	client := commonhttp.NewHTTPClientWithTimeout(10 * time.Second)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("is the proxy running at %s? %w", proxyURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	fmt.Printf("Response (%d): %s\n", resp.StatusCode, respBody)
	return nil
}
