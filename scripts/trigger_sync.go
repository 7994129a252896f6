package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// One-off trigger for the refresh endpoint of a running instance.
//
//	go run scripts/trigger_sync.go -addr http://localhost:8080

var addr = flag.String("addr", "http://localhost:8080", "server base URL")

func main() {
	flag.Parse()

	fmt.Println("=== Manual index refresh ===")
	fmt.Println()

	client := &http.Client{Timeout: 5 * time.Minute}

	start := time.Now()
	resp, err := client.Post(*addr+"/api/v1/sync", "application/json", nil)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var reply struct {
		Success    bool            `json:"success"`
		Message    string          `json:"message"`
		Data       json.RawMessage `json:"data"`
		StatusCode int             `json:"statusCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		log.Fatalf("failed to decode reply: %v", err)
	}

	fmt.Printf("status:  %d\n", reply.StatusCode)
	fmt.Printf("success: %v\n", reply.Success)
	fmt.Printf("message: %s\n", reply.Message)
	fmt.Printf("took:    %.2fs\n", time.Since(start).Seconds())

	if !reply.Success {
		log.Fatal("refresh failed")
	}
}
