package video

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Weslleykacau1/AvatarForge/generation"
)

// Fetcher downloads a finished video from its delivery URL and encodes it
// as a data URI. The credential travels in a request header, never in the
// query string. No retries: a failed download surfaces immediately.
type Fetcher struct {
	apiKey string
	client *http.Client
}

// NewFetcher builds a fetcher using the given API key.
func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		apiKey: apiKey,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Fetch retrieves the media at mediaURL and returns it as a data URI. The
// whole asset is materialized in memory; generated clips are a few
// megabytes at most.
func (f *Fetcher) Fetch(ctx context.Context, mediaURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return "", &generation.FetchError{Reason: err.Error()}
	}
	req.Header.Set("x-goog-api-key", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &generation.FetchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &generation.FetchError{Status: resp.StatusCode, Reason: "unexpected status"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &generation.FetchError{Reason: "reading body: " + err.Error()}
	}
	if len(body) == 0 {
		return "", &generation.FetchError{Status: resp.StatusCode, Reason: "empty body"}
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	return EncodeDataURI(mimeType, body), nil
}
