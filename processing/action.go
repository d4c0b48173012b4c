package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// ActionResponse is the structured output of the action generator.
type ActionResponse struct {
	Action string `json:"action" jsonschema_description:"A description of what the influencer is doing"`
}

func (r *ActionResponse) Validate() error {
	if strings.TrimSpace(r.Action) == "" {
		return fmt.Errorf("missing action")
	}
	return nil
}

var actionResponseSchema = generation.GenerateSchema[ActionResponse]()

// GenerateAction generates the influencer's main action for a scenario.
func GenerateAction(ctx context.Context, tc *generation.TextClient, scenario string) (string, error) {
	resp, err := generation.Structured[ActionResponse](ctx, tc,
		"scene_action",
		"The main action performed by the influencer",
		prompts.ComposeActionPrompt(scenario), actionResponseSchema)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Action), nil
}
