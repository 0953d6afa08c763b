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

const (
	baseURL = "http://localhost:3000/api"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // No timeout, LLM calls can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func dataField(resp map[string]interface{}, key string) string {
	if data, ok := resp["data"].(map[string]interface{}); ok {
		if v, ok := data[key].(string); ok {
			return v
		}
	}
	return ""
}

func main() {
	userToken := os.Getenv("TEST_USER_TOKEN")
	if userToken == "" {
		color.Red("TEST_USER_TOKEN is not set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Journaling API Smoke Test\n")

	// 1. Create Storybook
	color.Yellow("\n[USER] 1. Create Storybook")
	resp, body, err := sendRequest("POST", "/storybook/v1", userToken, map[string]interface{}{
		"title":           "My Year Abroad",
		"target_audience": "future self",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	createBookResp := decode(body)
	prettyPrint(createBookResp)
	storybookID := dataField(createBookResp, "id")

	// 2. Create Story
	color.Yellow("\n[USER] 2. Create Story")
	resp, body, err = sendRequest("POST", "/story/v1", userToken, map[string]interface{}{
		"title":        "Arrival day",
		"content":      "Today I finally landed in Lisbon. The air smelled like salt and diesel and I could not stop smiling even though I was exhausted from the flight.",
		"storybook_id": storybookID,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	createStoryResp := decode(body)
	prettyPrint(createStoryResp)
	storyID := dataField(createStoryResp, "id")

	// 3. Generate Questions
	color.Yellow("\n[USER] 3. Generate Reflective Questions")
	resp, body, err = sendRequest("POST", "/insight/v1/questions", userToken, map[string]interface{}{
		"content":         "Today I finally landed in Lisbon. The air smelled like salt and diesel and I could not stop smiling even though I was exhausted from the flight.",
		"context_balance": 50,
		"story_id":        storyID,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 4. Fetch Pre-generated Story Questions
	color.Yellow("\n[USER] 4. Get Story Questions")
	resp, body, err = sendRequest("GET", "/insight/v1/story/"+storyID+"/questions", userToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Reorder (single story, degenerate but exercises the endpoint)
	color.Yellow("\n[USER] 5. Reorder Stories")
	resp, body, err = sendRequest("PUT", "/storybook/v1/"+storybookID+"/reorder", userToken, map[string]interface{}{
		"story_ids": []string{storyID},
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\n✅ Smoke test finished")
}
