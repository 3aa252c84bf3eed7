package util

import (
	"encoding/json"
	"fmt"
	"os"

	"np-server/models/chat"
	"np-server/models/discover"
	"np-server/models/geocoding"
)

func readJSON(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return json.Unmarshal(data, out)
}

// ReadDiscoverResponseFromJSON loads a DiscoverResponse from JSON on disk.
func ReadDiscoverResponseFromJSON(filePath string) (*discover.DiscoverResponse, error) {
	var resp discover.DiscoverResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DiscoverResponse: %w", err)
	}
	return &resp, nil
}

// ReadChatCompletionResponseFromJSON loads a ChatCompletionResponse from JSON on disk.
func ReadChatCompletionResponseFromJSON(filePath string) (*chat.ChatCompletionResponse, error) {
	var resp chat.ChatCompletionResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ChatCompletionResponse: %w", err)
	}
	return &resp, nil
}

// ReadNominatimResultsFromJSON loads a Nominatim search result list from JSON on disk.
func ReadNominatimResultsFromJSON(filePath string) ([]geocoding.NominatimResult, error) {
	var results []geocoding.NominatimResult
	if err := readJSON(filePath, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NominatimResult list: %w", err)
	}
	return results, nil
}
