package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// DialogueResponse is the structured output of the dialogue generator.
// Generated dialogue is always Brazilian Portuguese.
type DialogueResponse struct {
	Dialogue string `json:"dialogue" jsonschema_description:"The generated dialogue in Brazilian Portuguese"`
}

func (r *DialogueResponse) Validate() error {
	if strings.TrimSpace(r.Dialogue) == "" {
		return fmt.Errorf("missing dialogue")
	}
	return nil
}

var dialogueResponseSchema = generation.GenerateSchema[DialogueResponse]()

// GenerateDialogue generates scene dialogue from context (scenario plus
// action).
func GenerateDialogue(ctx context.Context, tc *generation.TextClient, sceneContext string) (string, error) {
	resp, err := generation.Structured[DialogueResponse](ctx, tc,
		"scene_dialogue",
		"Dialogue spoken by the influencer",
		prompts.ComposeDialoguePrompt(sceneContext), dialogueResponseSchema)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Dialogue), nil
}
