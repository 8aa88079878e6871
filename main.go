package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MichaelHallik/python-docstring-generator/internal/config"
	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig("docstr.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Read the request file
	path := "request.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	req, err := cfg.LoadRequest(path)
	if err != nil {
		log.Fatalf("Failed to load request: %v", err)
	}

	// 3. Render
	body, err := docstring.Format(req)
	if err != nil {
		log.Fatalf("Failed to render docstring: %v", err)
	}
	if cfg.Output.TripleQuotes {
		body = docstring.TripleQuoted(body)
	}

	fmt.Println(body)
}
