package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// SEOResponse is the structured output of the SEO generator.
type SEOResponse struct {
	SEO string `json:"seo" jsonschema_description:"Generated SEO content, including a title, description, and keywords"`
}

func (r *SEOResponse) Validate() error {
	if strings.TrimSpace(r.SEO) == "" {
		return fmt.Errorf("missing seo content")
	}
	return nil
}

var seoResponseSchema = generation.GenerateSchema[SEOResponse]()

// GenerateSEO generates SEO copy (title, description, keywords) for a
// rendered scene.
func GenerateSEO(ctx context.Context, tc *generation.TextClient, sceneContext string) (string, error) {
	resp, err := generation.Structured[SEOResponse](ctx, tc,
		"scene_seo",
		"SEO content for a video",
		prompts.ComposeSEOPrompt(sceneContext), seoResponseSchema)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.SEO), nil
}
