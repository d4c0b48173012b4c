package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GenerateSchema generates a JSON schema for structured outputs.
// Structured Outputs uses a subset of JSON schema; these flags are
// necessary to comply with the subset.
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Validator lets an output type declare which fields the remote response
// must fill in. A parsed response that fails validation is a
// ContractViolation, not a successful result.
type Validator interface {
	Validate() error
}

// TextClient issues synchronous structured-output chat completions.
type TextClient struct {
	client openai.Client
	model  openai.ChatModel
}

// NewTextClient builds a client from OPENAI_API_KEY. The key is a
// configuration error surfaced at call time, not validated in advance.
func NewTextClient() (*TextClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &TextClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4oMini,
	}, nil
}

// Structured calls the model with JSON-schema enforcement and decodes the
// response into T. Message parts beyond the prompt (an image data URI, for
// example) ride along as additional user-message content.
func Structured[T any](ctx context.Context, tc *TextClient, name, description, prompt string, schema interface{}) (*T, error) {
	return structured[T](ctx, tc, name, description, schema,
		openai.UserMessage(prompt))
}

// StructuredWithImage is Structured with an image attached to the user
// message, for the image-analysis flows. The image travels as a
// self-describing data URI alongside the prompt text in one multi-part
// user message.
func StructuredWithImage[T any](ctx context.Context, tc *TextClient, name, description, prompt, imageDataURI string, schema interface{}) (*T, error) {
	return structured[T](ctx, tc, name, description, schema,
		openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(prompt),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: imageDataURI,
			}),
		}))
}

func structured[T any](ctx context.Context, tc *TextClient, name, description string, schema interface{}, messages ...openai.ChatCompletionMessageParamUnion) (*T, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(description),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	chatCompletion, err := tc.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    tc.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return nil, &TransportError{Op: "chat completion", Err: err}
	}

	if len(chatCompletion.Choices) == 0 {
		return nil, &ContractViolation{Reason: "no choices in response"}
	}

	rawResponse := chatCompletion.Choices[0].Message.Content
	if rawResponse == "" {
		return nil, &ContractViolation{
			Reason: fmt.Sprintf("empty response, finish reason %s", chatCompletion.Choices[0].FinishReason),
		}
	}

	var out T
	if err := json.Unmarshal([]byte(rawResponse), &out); err != nil {
		return nil, &ContractViolation{Reason: err.Error(), Raw: rawResponse}
	}

	if v, ok := any(&out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, &ContractViolation{Reason: err.Error(), Raw: rawResponse}
		}
	}

	return &out, nil
}
