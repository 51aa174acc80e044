//go:build ignore

// Smoke test against a running REST server:
//
//	go run scripts/test_chat_api.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000"

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func ask(question, language string) (*http.Response, map[string]interface{}, error) {
	jsonBody, _ := json.Marshal(map[string]string{
		"question": question,
		"language": language,
	})

	resp, err := http.Post(baseURL+"/api/chat/v1/ask", "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	return resp, parsed, nil
}

func main() {
	color.Cyan("Starting chat API smoke test\n")

	color.Yellow("\n1. Health check")
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	resp.Body.Close()
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n2. On-topic question, English")
	resp, body, err := ask("I want to start a poultry farm. Which courses can help me?", "english")
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n3. On-topic question, Hindi")
	resp, body, err = ask("Tell me about honey bee farming courses", "hindi")
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n4. Off-topic question (expects fallback)")
	resp, body, err = ask("What is the weather in Bangalore today?", "english")
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n5. Validation error (empty question)")
	resp, body, err = ask("", "english")
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s (expected 400)", resp.Status)
	prettyPrint(body)

	color.Cyan("\nDone")
}
