// requester drives the HTTP API with random shoppers: fill the cart, check
// out and read the order back.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/middleware"
)

var methods = []string{"cod", "bank_transfer", "e_wallet"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "api base url")
	secret := flag.String("secret", "", "JWT secret of the service")
	users := flag.Int("users", 20, "number of distinct shoppers")
	flag.Parse()

	tokens := make([]string, *users)
	for i := range tokens {
		token, err := middleware.IssueToken(*secret, fmt.Sprintf("shopper-%d", i), "customer", time.Hour)
		if err != nil {
			panic(err)
		}
		tokens[i] = token
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			token := tokens[rand.Intn(len(tokens))]
			wg.Go(func() { shop(*baseURL, token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func shop(baseURL, token string) {
	for range rand.Intn(3) + 1 {
		id := fmt.Sprintf("p%d", rand.Intn(50))
		do(baseURL, token, http.MethodPost, "/cart/lines", map[string]any{
			"product":  map[string]any{"id": id, "name": "Product " + id, "price": (rand.Intn(20) + 1) * 1000},
			"quantity": rand.Intn(3) + 1,
		}, nil)
	}

	var placed struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	do(baseURL, token, http.MethodPost, "/orders", map[string]any{
		"customer":       map[string]any{"name": "Load Test", "phone": "+10000000", "email": "load@example.com", "address": "1 Test St"},
		"payment_method": methods[rand.Intn(len(methods))],
	}, &placed)

	if placed.Order.ID != "" {
		do(baseURL, token, http.MethodGet, "/orders/"+placed.Order.ID, nil, nil)
	}
}

func do(baseURL, token, method, path string, body, out any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		fmt.Println("bad request:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println(method, path, "->", resp.Status)

	if out != nil && resp.StatusCode < 300 {
		json.NewDecoder(resp.Body).Decode(out)
	}
}
