package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// Script output formats accepted by GenerateScript.
const (
	ScriptFormatMarkdown = "markdown"
	ScriptFormatJSON     = "json"
)

// ScriptResponse is the structured output of the script generator.
type ScriptResponse struct {
	Script string `json:"script" jsonschema_description:"The generated script in the requested format"`
}

func (r *ScriptResponse) Validate() error {
	if strings.TrimSpace(r.Script) == "" {
		return fmt.Errorf("missing script")
	}
	return nil
}

var scriptResponseSchema = generation.GenerateSchema[ScriptResponse]()

// GenerateScript generates a full video script for an influencer and scene
// in the requested output format.
func GenerateScript(ctx context.Context, tc *generation.TextClient, influencerDetails, sceneDetails, outputFormat string) (string, error) {
	if outputFormat != ScriptFormatMarkdown && outputFormat != ScriptFormatJSON {
		return "", &generation.ValidationError{Msg: "output format must be markdown or json"}
	}
	resp, err := generation.Structured[ScriptResponse](ctx, tc,
		"video_script",
		"A detailed video script",
		prompts.ComposeScriptPrompt(influencerDetails, sceneDetails, outputFormat), scriptResponseSchema)
	if err != nil {
		return "", err
	}
	return resp.Script, nil
}
