package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// TitleResponse is the structured output of the title generator.
type TitleResponse struct {
	Title string `json:"title" jsonschema_description:"A creative and concise title for the scene"`
}

func (r *TitleResponse) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("missing title")
	}
	return nil
}

var titleResponseSchema = generation.GenerateSchema[TitleResponse]()

// GenerateTitle generates a short scene title from free-form context.
func GenerateTitle(ctx context.Context, tc *generation.TextClient, sceneContext string) (string, error) {
	resp, err := generation.Structured[TitleResponse](ctx, tc,
		"scene_title",
		"A short title for a video scene",
		prompts.ComposeTitlePrompt(sceneContext), titleResponseSchema)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Title), nil
}
