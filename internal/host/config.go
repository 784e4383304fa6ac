package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/pivotline"
	"gopkg.in/yaml.v3"
)

// LoadConfig decodes a YAML configuration on top of the default configuration. An empty document leaves the defaults.
func LoadConfig(r io.Reader) (pivotline.Config, error) {
	cfg := pivotline.DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadQueryResponse decodes a JSON query response.
func LoadQueryResponse(r io.Reader) (pivotline.QueryResponse, error) {
	var response pivotline.QueryResponse
	if err := json.NewDecoder(r).Decode(&response); err != nil {
		return response, fmt.Errorf("query response: %w", err)
	}
	return response, nil
}
