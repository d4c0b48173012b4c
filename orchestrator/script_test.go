package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

func sampleScript() models.Script {
	return models.Script{
		Title:    "Rooftop Reveal",
		Format:   "9:16",
		Language: "pt-BR",
		Character: models.ScriptCharacter{
			Name:       "Luna",
			Appearance: "short silver hair",
			Style:      "streetwear",
		},
		Scenes: []models.ScriptScene{
			{
				ID:              1,
				VisualPrompt:    "neon rooftop at night",
				CameraDirection: "slow pan left to right",
				Expression:      "confident smile",
				Dialogue:        "Chegou a hora.",
				StartTime:       0,
				EndTime:         2,
			},
			{ID: 2, VisualPrompt: "street level", StartTime: 2, EndTime: 5},
			{ID: 3, VisualPrompt: "subway", StartTime: 5, EndTime: 8},
			{ID: 4, VisualPrompt: "finale", StartTime: 8, EndTime: 12},
		},
	}
}

func TestComposeFromScriptEmptyScenes(t *testing.T) {
	_, _, _, _, orch := happyPipeline()

	_, err := orch.ComposeFromScript(context.Background(), models.Script{Title: "Empty"})
	var validationErr *generation.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestComposeFromScriptUsesFirstSceneOnly(t *testing.T) {
	narrative, submitter, _, _, orch := happyPipeline()

	result, err := orch.ComposeFromScript(context.Background(), sampleScript())
	if err != nil {
		t.Fatalf("ComposeFromScript returned error: %v", err)
	}

	if narrative.calls != 0 {
		t.Errorf("narrative called %d times, scripts never synthesize narrative", narrative.calls)
	}

	for _, want := range []string{
		"Scene Title: Rooftop Reveal",
		"**Character Name:** Luna",
		"**Scene Description:** neon rooftop at night",
		"The character, Luna, is performing. slow pan left to right",
		"Dialogue: Chegou a hora.",
	} {
		if !strings.Contains(submitter.prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, submitter.prompt)
		}
	}
	for _, later := range []string{"street level", "subway", "finale"} {
		if strings.Contains(submitter.prompt, later) {
			t.Errorf("prompt includes later scene %q, only the first scene is rendered", later)
		}
	}

	// Duration comes from the first scene's time span: 2 - 0.
	if submitter.cfg.DurationSeconds != 2 {
		t.Errorf("DurationSeconds = %d, want 2", submitter.cfg.DurationSeconds)
	}
	if submitter.cfg.AspectRatio != "9:16" {
		t.Errorf("AspectRatio = %q, want the script format", submitter.cfg.AspectRatio)
	}

	if result.Title != "Rooftop Reveal" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Dialogue != "Chegou a hora." {
		t.Errorf("Dialogue = %q", result.Dialogue)
	}
}

func TestComposeFromScriptAccent(t *testing.T) {
	t.Run("pt-BR gets the default accent", func(t *testing.T) {
		_, submitter, _, _, orch := happyPipeline()
		if _, err := orch.ComposeFromScript(context.Background(), sampleScript()); err != nil {
			t.Fatalf("ComposeFromScript returned error: %v", err)
		}
		if !strings.Contains(submitter.prompt, "Accent: "+prompts.DefaultAccent+"\n") {
			t.Errorf("pt-BR script should use the default accent:\n%s", submitter.prompt)
		}
	})

	t.Run("other languages leave the accent at the prompt default", func(t *testing.T) {
		_, submitter, _, _, orch := happyPipeline()
		script := sampleScript()
		script.Language = "en-US"
		if _, err := orch.ComposeFromScript(context.Background(), script); err != nil {
			t.Fatalf("ComposeFromScript returned error: %v", err)
		}
		if !strings.Contains(submitter.prompt, "Accent: "+prompts.DefaultAccent+"\n") {
			t.Errorf("empty accent should fall back to the composer default:\n%s", submitter.prompt)
		}
	})
}
