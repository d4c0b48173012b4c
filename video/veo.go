package video

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/Weslleykacau1/AvatarForge/generation"
)

// DefaultModel is the Veo model used when none is configured.
const DefaultModel = "veo-2.0-generate-001"

// VeoClient submits video-generation jobs to Google's Veo models and
// re-queries their long-running operations.
type VeoClient struct {
	apiKey string
	model  string
}

// NewVeoClient builds a client from GEMINI_API_KEY. model may be empty to
// use the default.
func NewVeoClient(model string) (*VeoClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if model == "" {
		model = DefaultModel
	}
	return &VeoClient{apiKey: apiKey, model: model}, nil
}

// APIKey exposes the credential for the media fetcher, which downloads the
// finished asset outside the SDK.
func (c *VeoClient) APIKey() string {
	return c.apiKey
}

func (c *VeoClient) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &generation.TransportError{Op: "create genai client", Err: err}
	}
	return client, nil
}

// Submit starts a video generation job and returns its operation handle.
// referenceImage, when non-empty, is a data URI used to condition the
// generation on a scene photo.
func (c *VeoClient) Submit(ctx context.Context, prompt string, cfg Config, referenceImage string) (Operation, error) {
	client, err := c.newClient(ctx)
	if err != nil {
		return Operation{}, err
	}

	var image *genai.Image
	if referenceImage != "" {
		mimeType, data, err := DecodeDataURI(referenceImage)
		if err != nil {
			return Operation{}, &generation.ValidationError{Msg: "reference image: " + err.Error()}
		}
		image = &genai.Image{ImageBytes: data, MIMEType: mimeType}
	}

	config := &genai.GenerateVideosConfig{
		AspectRatio:      cfg.AspectRatio,
		NegativePrompt:   cfg.NegativePrompt,
		PersonGeneration: "allow_adult",
		NumberOfVideos:   1,
	}
	if cfg.DurationSeconds > 0 {
		config.DurationSeconds = genai.Ptr(int32(cfg.DurationSeconds))
	}

	op, err := client.Models.GenerateVideos(ctx, c.model, prompt, image, config)
	if err != nil {
		return Operation{}, &generation.TransportError{Op: "start video generation", Err: err}
	}

	return fromGenaiOperation(op), nil
}

// CheckOperation re-queries the status of an in-flight operation.
func (c *VeoClient) CheckOperation(ctx context.Context, op Operation) (Operation, error) {
	raw, ok := op.raw.(*genai.GenerateVideosOperation)
	if !ok {
		return Operation{}, fmt.Errorf("operation %q carries no provider handle", op.Name)
	}

	client, err := c.newClient(ctx)
	if err != nil {
		return Operation{}, err
	}

	updated, err := client.Operations.GetVideosOperation(ctx, raw, nil)
	if err != nil {
		return Operation{}, &generation.TransportError{Op: "poll video operation", Err: err}
	}

	return fromGenaiOperation(updated), nil
}

// fromGenaiOperation converts the provider operation into the closed
// Operation shape the pipeline works with.
func fromGenaiOperation(op *genai.GenerateVideosOperation) Operation {
	out := Operation{
		Name: op.Name,
		Done: op.Done,
		raw:  op,
	}

	if len(op.Error) > 0 {
		if msg, err := json.Marshal(op.Error); err == nil {
			out.ErrorMessage = string(msg)
		} else {
			out.ErrorMessage = "unknown operation error"
		}
		return out
	}

	if op.Response == nil {
		return out
	}

	if op.Response.RAIMediaFilteredCount > 0 {
		out.ErrorMessage = fmt.Sprintf("video blocked by safety filters: %d filtered", op.Response.RAIMediaFilteredCount)
		if len(op.Response.RAIMediaFilteredReasons) > 0 {
			out.ErrorMessage += ": " + op.Response.RAIMediaFilteredReasons[0]
		}
		return out
	}

	if len(op.Response.GeneratedVideos) > 0 && op.Response.GeneratedVideos[0].Video != nil {
		v := op.Response.GeneratedVideos[0].Video
		out.MediaURL = v.URI
		out.MediaBytes = v.VideoBytes
	}

	return out
}
