// Package main implements a standalone seed script that populates the
// catalog backend with demo products and a demo shopper account, so a fresh
// development environment has data to browse the storefront against.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func httpPost(client *http.Client, url string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("post %s: status %d: %s", url, resp.StatusCode, raw)
	}

	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", url, err)
		}
	}
	return out, nil
}

type product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

func main() {
	baseURL := getEnv("CATALOG_BASE_URL", "http://localhost:5000")
	client := &http.Client{Timeout: 15 * time.Second}

	products := []product{
		{ID: "seed-1", Name: "Mens Winter Leathers Jacket", Category: "Jacket", Price: 48.00, ImageURL: "/static/images/products/jacket-3.jpg"},
		{ID: "seed-2", Name: "Pure Garment Dyed Cotton Shirt", Category: "Shirt", Price: 45.00, ImageURL: "/static/images/products/shirt-1.jpg"},
		{ID: "seed-3", Name: "Running & Trekking Shoes", Category: "Shoes", Price: 58.00, ImageURL: "/static/images/products/sports-6.jpg"},
		{ID: "seed-4", Name: "Pocket Watch Leather Pouch", Category: "Watches", Price: 30.00, ImageURL: "/static/images/products/watch-3.jpg"},
		{ID: "seed-5", Name: "Casual Sneakers", Category: "Shoes", Price: 60.00, ImageURL: "/static/images/products/shoe-1.jpg"},
	}

	if _, err := httpPost(client, baseURL+"/save_products", products); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	log.Printf("seeded %d products", len(products))

	demoUser := map[string]string{
		"name":     "Demo Shopper",
		"email":    "demo@insightcart.dev",
		"phone":    "5550100",
		"address":  "1 Demo Street",
		"age":      "30",
		"gender":   "other",
		"category": "Shoes",
		"budget":   "500",
		"payment":  "card",
		"password": "demo-password",
	}

	if _, err := httpPost(client, baseURL+"/register", demoUser); err != nil {
		// Re-running the script against a seeded backend is fine.
		log.Printf("seed demo user (may already exist): %v", err)
	} else {
		log.Printf("seeded demo user %s", demoUser["email"])
	}
}
