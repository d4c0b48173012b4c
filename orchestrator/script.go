package orchestrator

import (
	"context"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// ComposeFromScript renders a video from a fully structured script.
//
// Only the first scene in the script is processed; multi-scene stitching
// is not implemented. Scene duration is end_time - start_time.
func (o *Orchestrator) ComposeFromScript(ctx context.Context, script models.Script) (*Result, error) {
	if len(script.Scenes) == 0 {
		return nil, &generation.ValidationError{Msg: "script must contain at least one scene"}
	}

	first := script.Scenes[0]
	duration := int(first.EndTime - first.StartTime)

	accent := ""
	if script.Language == "pt-BR" {
		accent = prompts.DefaultAccent
	}

	o.progress(generation.StageCompose)
	prompt, cfg := prompts.ComposeVideoPrompt(prompts.VideoRequest{
		SceneTitle:      script.Title,
		Scenario:        prompts.ComposeScriptScenario(script.Character, first),
		Action:          prompts.ComposeScriptAction(script.Character.Name, first.CameraDirection),
		Dialogue:        first.Dialogue,
		Accent:          accent,
		DurationSeconds: duration,
		AspectRatio:     script.Format,
	})

	videoDataURI, err := o.renderVideo(ctx, prompt, cfg, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		VideoDataURI: videoDataURI,
		Title:        script.Title,
		Action:       prompts.ComposeScriptAction(script.Character.Name, first.CameraDirection),
		Dialogue:     first.Dialogue,
	}, nil
}
