package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type sampleOutput struct {
	Title  string `json:"title" jsonschema_description:"Scene title"`
	Action string `json:"action"`
}

func TestGenerateSchemaStructuredOutputSubset(t *testing.T) {
	raw := GenerateSchema[sampleOutput]()

	schema, ok := raw.(*jsonschema.Schema)
	if !ok {
		t.Fatalf("GenerateSchema returned %T, want *jsonschema.Schema", raw)
	}

	// Strict structured outputs reject schemas with open objects or $refs.
	if schema.AdditionalProperties == nil {
		t.Error("schema must forbid additional properties")
	}
	if schema.Ref != "" {
		t.Errorf("schema must be inlined, got $ref %q", schema.Ref)
	}

	for _, field := range []string{"title", "action"} {
		if _, ok := schema.Properties.Get(field); !ok {
			t.Errorf("schema missing property %q", field)
		}
	}

	// The schema must serialize cleanly: it is sent verbatim to the API.
	if _, err := json.Marshal(schema); err != nil {
		t.Errorf("schema does not marshal: %v", err)
	}
}

// newStubClient routes a TextClient at a canned completion endpoint and
// captures the raw request body.
func newStubClient(t *testing.T, content string, gotBody *string) *TextClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*gotBody = string(body)

		completion := map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completion)
	}))
	t.Cleanup(srv.Close)

	return &TextClient{
		client: openai.NewClient(option.WithAPIKey("test"), option.WithBaseURL(srv.URL)),
		model:  openai.ChatModelGPT4oMini,
	}
}

func TestStructuredDecodesResponse(t *testing.T) {
	var body string
	tc := newStubClient(t, `{"title":"A Title","action":"An Action"}`, &body)

	out, err := Structured[sampleOutput](context.Background(), tc,
		"sample", "a sample output", "describe the scene", GenerateSchema[sampleOutput]())
	if err != nil {
		t.Fatalf("Structured returned error: %v", err)
	}
	if out.Title != "A Title" || out.Action != "An Action" {
		t.Errorf("decoded %+v", out)
	}
	if !strings.Contains(body, `"describe the scene"`) {
		t.Errorf("request missing prompt text:\n%s", body)
	}
	if !strings.Contains(body, `"json_schema"`) {
		t.Errorf("request missing schema enforcement:\n%s", body)
	}
}

func TestStructuredWithImageSendsMultipartMessage(t *testing.T) {
	var body string
	tc := newStubClient(t, `{"title":"A Title","action":"An Action"}`, &body)

	dataURI := "data:image/png;base64,AAAA"
	out, err := StructuredWithImage[sampleOutput](context.Background(), tc,
		"sample", "a sample output", "describe the image", dataURI, GenerateSchema[sampleOutput]())
	if err != nil {
		t.Fatalf("StructuredWithImage returned error: %v", err)
	}
	if out.Title != "A Title" {
		t.Errorf("decoded %+v", out)
	}

	// Text and image ride in one user message as typed content parts.
	if !strings.Contains(body, `"type":"text"`) {
		t.Errorf("request missing text content part:\n%s", body)
	}
	if !strings.Contains(body, `"type":"image_url"`) {
		t.Errorf("request missing image content part:\n%s", body)
	}
	if !strings.Contains(body, dataURI) {
		t.Errorf("request missing image data URI:\n%s", body)
	}
	if !strings.Contains(body, "describe the image") {
		t.Errorf("request missing prompt text:\n%s", body)
	}
}

func TestStructuredRejectsMalformedContent(t *testing.T) {
	var body string
	tc := newStubClient(t, `not json at all`, &body)

	_, err := Structured[sampleOutput](context.Background(), tc,
		"sample", "a sample output", "describe the scene", GenerateSchema[sampleOutput]())
	var contract *ContractViolation
	if !errors.As(err, &contract) {
		t.Fatalf("err = %v, want ContractViolation", err)
	}
}

func TestNewTextClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewTextClient(); err == nil {
		t.Error("NewTextClient succeeded without OPENAI_API_KEY")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	if _, err := NewTextClient(); err != nil {
		t.Errorf("NewTextClient with key set: %v", err)
	}
}
