// Package orchestrator composes the full scene-render pipeline: resolve
// the narrative, build the video prompt, submit the generation job, poll
// it to completion, and materialize the asset. Each stage returns a tagged
// error; the first failure aborts the rest. The orchestrator performs no
// retries of its own.
package orchestrator

import (
	"context"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/processing"
	"github.com/Weslleykacau1/AvatarForge/prompts"
	"github.com/Weslleykacau1/AvatarForge/video"
)

// NarrativeGenerator issues the single combined call that fills in the
// missing title/action/dialogue of a scene.
type NarrativeGenerator interface {
	GenerateSceneDetails(ctx context.Context, influencerDescription, scenario string) (*processing.SceneDetails, error)
}

// Awaiter drives a long-running operation to a terminal state.
type Awaiter interface {
	Await(ctx context.Context, op video.Operation) (video.Operation, error)
}

// MediaFetcher materializes a finished asset from its delivery URL.
type MediaFetcher interface {
	Fetch(ctx context.Context, mediaURL string) (string, error)
}

// SceneInput is a render request with the narrative possibly incomplete.
// InfluencerDescription and Scenario are required; title, action and
// dialogue are synthesized when absent, and user-supplied values always
// win per field.
type SceneInput struct {
	InfluencerDescription string
	Scenario              string

	Title    string
	Action   string
	Dialogue string

	Accent          string
	CameraAngle     string
	DurationSeconds int
	AspectRatio     string

	AllowDigitalText bool
	PhysicalTextOnly bool

	Hyperrealism       bool
	FourK              bool
	ProfessionalCamera bool

	NegativePrompt string
	ReferenceImage string

	Product *models.Product
}

// Result is the orchestrator output: the encoded video plus the narrative
// strings actually used, so callers can reflect them back into stored
// records.
type Result struct {
	VideoDataURI string
	Title        string
	Action       string
	Dialogue     string
}

// Orchestrator wires the pipeline stages together.
type Orchestrator struct {
	narrative NarrativeGenerator
	submitter video.Submitter
	poller    Awaiter
	fetcher   MediaFetcher

	// Progress, when set, is invoked as each stage begins. Used by the
	// worker to reflect pipeline position into job status.
	Progress func(stage string)
}

func (o *Orchestrator) progress(stage string) {
	if o.Progress != nil {
		o.Progress(stage)
	}
}

// New builds an orchestrator from its stage implementations.
func New(narrative NarrativeGenerator, submitter video.Submitter, poller Awaiter, fetcher MediaFetcher) *Orchestrator {
	return &Orchestrator{
		narrative: narrative,
		submitter: submitter,
		poller:    poller,
		fetcher:   fetcher,
	}
}

// ComposeScene runs the full pipeline for a scene render request.
func (o *Orchestrator) ComposeScene(ctx context.Context, input SceneInput) (*Result, error) {
	if input.InfluencerDescription == "" {
		return nil, &generation.ValidationError{Msg: "influencer description is required"}
	}
	if input.Scenario == "" {
		return nil, &generation.ValidationError{Msg: "scenario is required"}
	}

	title, action, dialogue := input.Title, input.Action, input.Dialogue

	// One combined narrative call, and only when something is missing.
	// Rendering a scene whose narrative is fully supplied must not cost a
	// generation call.
	if title == "" || action == "" || dialogue == "" {
		o.progress(generation.StageNarrative)
		details, err := o.narrative.GenerateSceneDetails(ctx, input.InfluencerDescription, input.Scenario)
		if err != nil {
			return nil, &generation.StageError{Stage: generation.StageNarrative, Err: err}
		}
		if title == "" {
			title = details.Title
		}
		if action == "" {
			action = details.Action
		}
		if dialogue == "" {
			dialogue = details.Dialogue
		}
	}

	scenario := input.Scenario
	referenceImage := input.ReferenceImage
	if input.Product != nil {
		scenario = scenario + "\n\n" + prompts.ComposeProductOverlay(*input.Product)
		// Without a scene photo, the product photo conditions the video.
		if referenceImage == "" {
			referenceImage = input.Product.Image
		}
	}

	o.progress(generation.StageCompose)
	prompt, cfg := prompts.ComposeVideoPrompt(prompts.VideoRequest{
		SceneTitle:         title,
		Scenario:           prompts.ComposeScenario(input.InfluencerDescription, scenario),
		Action:             action,
		Dialogue:           dialogue,
		Accent:             input.Accent,
		CameraAngle:        input.CameraAngle,
		DurationSeconds:    input.DurationSeconds,
		AspectRatio:        input.AspectRatio,
		AllowDigitalText:   input.AllowDigitalText,
		PhysicalTextOnly:   input.PhysicalTextOnly,
		Hyperrealism:       input.Hyperrealism,
		FourK:              input.FourK,
		ProfessionalCamera: input.ProfessionalCamera,
		NegativePrompt:     input.NegativePrompt,
	})

	videoDataURI, err := o.renderVideo(ctx, prompt, cfg, referenceImage)
	if err != nil {
		return nil, err
	}

	return &Result{
		VideoDataURI: videoDataURI,
		Title:        title,
		Action:       action,
		Dialogue:     dialogue,
	}, nil
}

// renderVideo submits the video job, waits for it, and materializes the
// asset. Shared by the scene and script pipelines.
func (o *Orchestrator) renderVideo(ctx context.Context, prompt string, cfg prompts.VideoConfig, referenceImage string) (string, error) {
	o.progress(generation.StageSubmit)
	op, err := o.submitter.Submit(ctx, prompt, video.Config{
		DurationSeconds: cfg.DurationSeconds,
		AspectRatio:     cfg.AspectRatio,
		NegativePrompt:  cfg.NegativePrompt,
	}, referenceImage)
	if err != nil {
		return "", &generation.StageError{Stage: generation.StageSubmit, Err: err}
	}

	o.progress(generation.StagePoll)
	done, err := o.poller.Await(ctx, op)
	if err != nil {
		return "", &generation.StageError{Stage: generation.StagePoll, Err: err}
	}

	// Some backends return the asset inline; only a delivery URL needs a
	// download round trip.
	if len(done.MediaBytes) > 0 {
		return video.EncodeDataURI("video/mp4", done.MediaBytes), nil
	}

	o.progress(generation.StageFetch)
	dataURI, err := o.fetcher.Fetch(ctx, done.MediaURL)
	if err != nil {
		return "", &generation.StageError{Stage: generation.StageFetch, Err: err}
	}
	return dataURI, nil
}
