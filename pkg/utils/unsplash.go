package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ImageSearchClientInterface abstracts the image-search provider used to
// enrich generated trips. Failures here are always non-fatal to the caller.
type ImageSearchClientInterface interface {
	SearchImages(ctx context.Context, query string, limit int) ([]string, error)
}

type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (u *UnsplashClient) SearchImages(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 3
	}

	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%s",
		u.baseURL, url.QueryEscape(query), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	var body unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	var urls []string
	for _, result := range body.Results {
		if result.URLs.Regular != "" {
			urls = append(urls, result.URLs.Regular)
		}
		if len(urls) == limit {
			break
		}
	}
	return urls, nil
}
