// Package main provides the entry point for the ContentVault MCP server.
//
// This MCP server lets AI agents browse the ContentVault catalogue and, given a
// session token, read recommendations and record interactions.
//
// Configuration:
//
//	CONTENTVAULT_API_URL   - Base URL of the API (default: http://localhost:8080)
//	CONTENTVAULT_API_TOKEN - Wallet session JWT (optional; public tools only without it)
package main

import (
	"log"
	"os"

	"github.com/BotGJ16/ContentVault/cmd/mcp/client"
	"github.com/BotGJ16/ContentVault/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("CONTENTVAULT_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("CONTENTVAULT_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
