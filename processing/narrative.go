// Package processing holds the generation flows: one function per
// user-facing AI operation, each building its prompt through the prompts
// package and enforcing its output shape through the generation client.
package processing

import (
	"context"
	"fmt"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// SceneDetails is the combined narrative output: everything a scene needs
// before the video call can be issued.
type SceneDetails struct {
	Title    string `json:"title" jsonschema_description:"A creative and concise title for the scene, less than 10 words"`
	Action   string `json:"action" jsonschema_description:"A clear and engaging main action for the influencer in the video scene"`
	Dialogue string `json:"dialogue" jsonschema_description:"A short and engaging dialogue for the influencer, in Brazilian Portuguese"`
}

// Validate enforces the narrative contract: all three fields are required
// outputs even when optional as inputs.
func (d *SceneDetails) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("missing title")
	}
	if d.Action == "" {
		return fmt.Errorf("missing action")
	}
	if d.Dialogue == "" {
		return fmt.Errorf("missing dialogue")
	}
	return nil
}

var sceneDetailsSchema = generation.GenerateSchema[SceneDetails]()

// GenerateSceneDetails issues the single combined narrative call used when
// any of title/action/dialogue is missing from a render request.
func GenerateSceneDetails(ctx context.Context, tc *generation.TextClient, influencerDescription, scenario string) (*SceneDetails, error) {
	prompt := prompts.ComposeNarrativePrompt(influencerDescription, scenario)
	return generation.Structured[SceneDetails](ctx, tc,
		"scene_details",
		"Title, main action and dialogue for a video scene",
		prompt, sceneDetailsSchema)
}
