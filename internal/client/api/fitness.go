package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/fitbuddy/internal/client/catalog"
	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/logging"
)

// FitnessAPI supplies exercise catalog data.
//
// Resilience contract: implementations never fail the caller — on any fetch
// problem they degrade to the built-in catalog and return a nil error. The
// returned sequence is ordered and safe for the caller to retain.
type FitnessAPI interface {
	// GetExercises lists exercises, optionally restricted to a muscle group.
	GetExercises(ctx context.Context, muscle string) ([]models.Exercise, error)
	// SearchExercises lists exercises whose name matches the given text.
	SearchExercises(ctx context.Context, name string) ([]models.Exercise, error)
}

// HTTPFitnessAPI talks to the API-Ninjas exercises endpoint. When no API key
// is configured, it serves the built-in catalog without going to the network.
type HTTPFitnessAPI struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logging.Logger
}

func NewHTTPFitnessAPI(baseURL, apiKey string, client *http.Client, log logging.Logger) *HTTPFitnessAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFitnessAPI{baseURL: baseURL, apiKey: apiKey, client: client, log: log}
}

func (f *HTTPFitnessAPI) GetExercises(ctx context.Context, muscle string) ([]models.Exercise, error) {
	if f.apiKey == "" {
		return catalog.Filter(catalog.Builtin(), "", muscle), nil
	}

	params := url.Values{}
	if muscle != "" {
		params.Set("muscle", muscle)
	}
	list, err := f.fetch(ctx, params)
	if err != nil {
		f.log.Warn(ctx, "exercise fetch failed, using built-in catalog", "error", err)
		return catalog.Filter(catalog.Builtin(), "", muscle), nil
	}
	return list, nil
}

func (f *HTTPFitnessAPI) SearchExercises(ctx context.Context, name string) ([]models.Exercise, error) {
	if f.apiKey == "" {
		return catalog.Filter(catalog.Builtin(), name, ""), nil
	}

	params := url.Values{}
	params.Set("name", name)
	list, err := f.fetch(ctx, params)
	if err != nil {
		f.log.Warn(ctx, "exercise search failed, using built-in catalog", "error", err)
		return catalog.Filter(catalog.Builtin(), name, ""), nil
	}
	return list, nil
}

func (f *HTTPFitnessAPI) fetch(ctx context.Context, params url.Values) ([]models.Exercise, error) {
	u := f.baseURL + "/exercises"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Api-Key", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var list []models.Exercise
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return list, nil
}
