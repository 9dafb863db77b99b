package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, models, style")
	imagePath := flag.String("image", "", "Path to a JPEG/PNG clothing photo (for style test)")
	model := flag.String("model", "", "Model identifier (empty = server default)")
	gender := flag.String("gender", "Female", "Gender preference")
	skinTone := flag.String("skin-tone", "Medium", "Skin tone")
	bodyType := flag.String("body-type", "Hourglass", "Body type")
	occasion := flag.String("occasion", "Date Night", "Occasion")
	weather := flag.String("weather", "Mild/Spring", "Weather")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("OutfitAI Stylist Agent - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	styleTest := func() bool {
		if *imagePath == "" {
			printError("Image path is required for style test. Use -image flag")
			return false
		}
		return client.testStyle(*imagePath, *model, *gender, *skinTone, *bodyType, *occasion, *weather)
	}

	switch *testType {
	case "all":
		tests := []struct {
			name string
			fn   func() bool
		}{
			{"Health Check", client.testHealthCheck},
			{"Model Listing", client.testModels},
		}
		if *imagePath != "" {
			tests = append(tests, struct {
				name string
				fn   func() bool
			}{"Style Request", styleTest})
		}

		passed := 0
		failed := 0
		for _, test := range tests {
			if test.fn() {
				passed++
			} else {
				failed++
			}
			fmt.Println()
		}

		printHeader("Test Summary")
		fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
		fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
		fmt.Printf("Total: %d\n", passed+failed)
		if failed > 0 {
			os.Exit(1)
		}
	case "health":
		client.testHealthCheck()
	case "models":
		client.testModels()
	case "style":
		if !styleTest() {
			os.Exit(1)
		}
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, models, style")
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testModels() bool {
	printTestHeader("Testing Model Listing Endpoint")

	url := fmt.Sprintf("%s/api/v1/models", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var parsed struct {
		Models []string `json:"models"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(parsed.Models) == 0 {
		printError("Model list is empty")
		return false
	}

	printSuccess(fmt.Sprintf("Got %d models (ranked)", len(parsed.Models)))
	for _, m := range parsed.Models {
		fmt.Printf("  - %s\n", m)
	}
	return true
}

func (tc *TestClient) testStyle(imagePath, model, gender, skinTone, bodyType, occasion, weather string) bool {
	printTestHeader("Testing Style Endpoint")

	data, err := os.ReadFile(imagePath)
	if err != nil {
		printError(fmt.Sprintf("Failed to read image: %v", err))
		return false
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		printError(fmt.Sprintf("Failed to build form: %v", err))
		return false
	}
	if _, err := fw.Write(data); err != nil {
		printError(fmt.Sprintf("Failed to write image: %v", err))
		return false
	}
	fields := map[string]string{
		"gender":    gender,
		"skin_tone": skinTone,
		"body_type": bodyType,
		"occasion":  occasion,
		"weather":   weather,
	}
	if model != "" {
		fields["model"] = model
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			printError(fmt.Sprintf("Failed to write field %s: %v", k, err))
			return false
		}
	}
	w.Close()

	url := fmt.Sprintf("%s/api/v1/style", tc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("%sImage:%s %s (%d bytes)\n\n", colorCyan, colorReset, imagePath, len(data))

	resp, err := tc.client.Post(url, w.FormDataContentType(), &buf)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		printJSON(body)
		return false
	}

	var parsed struct {
		Summary string `json:"summary"`
		Advice  string `json:"advice"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	printSuccess(fmt.Sprintf("Detected: %s", parsed.Summary))
	fmt.Printf("\n%sStyling Advice:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(parsed.Advice)
	fmt.Println(strings.Repeat("=", 80))
	return true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
