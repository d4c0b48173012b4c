package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/processing"
	"github.com/Weslleykacau1/AvatarForge/video"
)

type fakeNarrative struct {
	calls   int
	details processing.SceneDetails
	err     error
}

func (f *fakeNarrative) GenerateSceneDetails(ctx context.Context, influencerDescription, scenario string) (*processing.SceneDetails, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	d := f.details
	return &d, nil
}

type fakeSubmitter struct {
	prompt   string
	cfg      video.Config
	refImage string
	op       video.Operation
	err      error
}

func (f *fakeSubmitter) Submit(ctx context.Context, prompt string, cfg video.Config, referenceImage string) (video.Operation, error) {
	f.prompt = prompt
	f.cfg = cfg
	f.refImage = referenceImage
	return f.op, f.err
}

type fakeAwaiter struct {
	op  video.Operation
	err error
}

func (f *fakeAwaiter) Await(ctx context.Context, op video.Operation) (video.Operation, error) {
	if f.err != nil {
		return op, f.err
	}
	return f.op, nil
}

type fakeFetcher struct {
	gotURL  string
	dataURI string
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context, mediaURL string) (string, error) {
	f.gotURL = mediaURL
	return f.dataURI, f.err
}

func happyPipeline() (*fakeNarrative, *fakeSubmitter, *fakeAwaiter, *fakeFetcher, *Orchestrator) {
	narrative := &fakeNarrative{details: processing.SceneDetails{
		Title:    "Generated Title",
		Action:   "Generated Action",
		Dialogue: "Fala gerada",
	}}
	submitter := &fakeSubmitter{op: video.Operation{Name: "op-1"}}
	awaiter := &fakeAwaiter{op: video.Operation{
		Name: "op-1", Done: true, MediaURL: "https://example.com/v.mp4",
	}}
	fetcher := &fakeFetcher{dataURI: "data:video/mp4;base64,AAAA"}
	return narrative, submitter, awaiter, fetcher, New(narrative, submitter, awaiter, fetcher)
}

func TestComposeSceneValidation(t *testing.T) {
	_, _, _, _, orch := happyPipeline()

	cases := []struct {
		name  string
		input SceneInput
	}{
		{"missing influencer description", SceneInput{Scenario: "a beach"}},
		{"missing scenario", SceneInput{InfluencerDescription: "an influencer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orch.ComposeScene(context.Background(), tc.input)
			var validationErr *generation.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestComposeSceneSkipsNarrativeWhenComplete(t *testing.T) {
	narrative, _, _, _, orch := happyPipeline()

	result, err := orch.ComposeScene(context.Background(), SceneInput{
		InfluencerDescription: "an influencer",
		Scenario:              "a kitchen",
		Title:                 "User Title",
		Action:                "User Action",
		Dialogue:              "Fala do usuário",
	})
	if err != nil {
		t.Fatalf("ComposeScene returned error: %v", err)
	}
	if narrative.calls != 0 {
		t.Errorf("narrative called %d times, want 0 when all fields supplied", narrative.calls)
	}
	if result.Title != "User Title" || result.Action != "User Action" || result.Dialogue != "Fala do usuário" {
		t.Errorf("result narrative = %q/%q/%q, want the user values", result.Title, result.Action, result.Dialogue)
	}
}

func TestComposeSceneFillsOnlyMissingFields(t *testing.T) {
	narrative, _, _, _, orch := happyPipeline()

	result, err := orch.ComposeScene(context.Background(), SceneInput{
		InfluencerDescription: "an influencer",
		Scenario:              "a kitchen",
		Title:                 "User Title",
	})
	if err != nil {
		t.Fatalf("ComposeScene returned error: %v", err)
	}
	if narrative.calls != 1 {
		t.Errorf("narrative called %d times, want exactly 1", narrative.calls)
	}
	if result.Title != "User Title" {
		t.Errorf("Title = %q, user value must win", result.Title)
	}
	if result.Action != "Generated Action" || result.Dialogue != "Fala gerada" {
		t.Errorf("missing fields not filled: %q / %q", result.Action, result.Dialogue)
	}
}

func TestComposeSceneEndToEnd(t *testing.T) {
	narrative, submitter, _, fetcher, orch := happyPipeline()

	var stages []string
	orch.Progress = func(stage string) { stages = append(stages, stage) }

	avatar := models.Avatar{Name: "Dr. Roberto", Niche: "Saúde"}
	result, err := orch.ComposeScene(context.Background(), SceneInput{
		InfluencerDescription: avatar.Description(),
		Scenario:              "consultório azul",
		DurationSeconds:       7,
		AspectRatio:           "16:9",
		NegativePrompt:        "blurry",
		Product: &models.Product{
			Name:          "Vitamina C",
			IsPartnership: true,
		},
	})
	if err != nil {
		t.Fatalf("ComposeScene returned error: %v", err)
	}

	if narrative.calls != 1 {
		t.Errorf("narrative calls = %d, want 1", narrative.calls)
	}
	for _, want := range []string{
		"Name: Dr. Roberto",
		"Niche: Saúde",
		"**Cenário:** consultório azul",
		"Product Name: Vitamina C",
		"Sponsored Partnership: Yes",
	} {
		if !strings.Contains(submitter.prompt, want) {
			t.Errorf("video prompt missing %q:\n%s", want, submitter.prompt)
		}
	}
	if submitter.cfg.DurationSeconds != 7 || submitter.cfg.AspectRatio != "16:9" {
		t.Errorf("submit config = %+v", submitter.cfg)
	}
	if submitter.cfg.NegativePrompt != "blurry" {
		t.Errorf("NegativePrompt = %q", submitter.cfg.NegativePrompt)
	}

	if fetcher.gotURL != "https://example.com/v.mp4" {
		t.Errorf("fetched %q, want the operation's media URL", fetcher.gotURL)
	}
	if result.VideoDataURI != "data:video/mp4;base64,AAAA" {
		t.Errorf("VideoDataURI = %q", result.VideoDataURI)
	}

	wantStages := []string{
		generation.StageNarrative,
		generation.StageCompose,
		generation.StageSubmit,
		generation.StagePoll,
		generation.StageFetch,
	}
	if len(stages) != len(wantStages) {
		t.Fatalf("stages = %v, want %v", stages, wantStages)
	}
	for i := range wantStages {
		if stages[i] != wantStages[i] {
			t.Errorf("stage[%d] = %q, want %q", i, stages[i], wantStages[i])
		}
	}
}

func TestComposeSceneReferenceImageFallback(t *testing.T) {
	productImage := "data:image/png;base64,AAAA"
	sceneImage := "data:image/jpeg;base64,BBBB"

	t.Run("product image stands in when the scene has none", func(t *testing.T) {
		_, submitter, _, _, orch := happyPipeline()
		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
			Product: &models.Product{Name: "Mug", Image: productImage},
		})
		if err != nil {
			t.Fatalf("ComposeScene returned error: %v", err)
		}
		if submitter.refImage != productImage {
			t.Errorf("submitted reference image %q, want the product image", submitter.refImage)
		}
	})

	t.Run("scene image wins over the product image", func(t *testing.T) {
		_, submitter, _, _, orch := happyPipeline()
		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
			ReferenceImage:        sceneImage,
			Product:               &models.Product{Name: "Mug", Image: productImage},
		})
		if err != nil {
			t.Fatalf("ComposeScene returned error: %v", err)
		}
		if submitter.refImage != sceneImage {
			t.Errorf("submitted reference image %q, want the scene image", submitter.refImage)
		}
	})

	t.Run("no images submits none", func(t *testing.T) {
		_, submitter, _, _, orch := happyPipeline()
		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
			Product:               &models.Product{Name: "Mug"},
		})
		if err != nil {
			t.Fatalf("ComposeScene returned error: %v", err)
		}
		if submitter.refImage != "" {
			t.Errorf("submitted reference image %q, want none", submitter.refImage)
		}
	})
}

func TestComposeSceneInlineMediaSkipsFetch(t *testing.T) {
	_, _, awaiter, fetcher, orch := happyPipeline()
	awaiter.op = video.Operation{Name: "op-1", Done: true, MediaBytes: []byte("inline")}

	result, err := orch.ComposeScene(context.Background(), SceneInput{
		InfluencerDescription: "an influencer",
		Scenario:              "a kitchen",
		Title:                 "T", Action: "A", Dialogue: "D",
	})
	if err != nil {
		t.Fatalf("ComposeScene returned error: %v", err)
	}
	if fetcher.gotURL != "" {
		t.Error("fetcher should not be called when media bytes are inline")
	}
	if !strings.HasPrefix(result.VideoDataURI, "data:video/mp4;base64,") {
		t.Errorf("VideoDataURI = %q", result.VideoDataURI)
	}
}

func TestComposeSceneStageErrors(t *testing.T) {
	t.Run("narrative failure", func(t *testing.T) {
		narrative, submitter, _, _, orch := happyPipeline()
		narrative.err = errors.New("model unavailable")

		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
		})
		var stageErr *generation.StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != generation.StageNarrative {
			t.Fatalf("err = %v, want StageError at %q", err, generation.StageNarrative)
		}
		if submitter.prompt != "" {
			t.Error("submit must not run after a narrative failure")
		}
	})

	t.Run("submit failure", func(t *testing.T) {
		_, submitter, _, fetcher, orch := happyPipeline()
		submitter.err = errors.New("quota exceeded")

		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
		})
		var stageErr *generation.StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != generation.StageSubmit {
			t.Fatalf("err = %v, want StageError at %q", err, generation.StageSubmit)
		}
		if fetcher.gotURL != "" {
			t.Error("fetch must not run after a submit failure")
		}
	})

	t.Run("poll failure", func(t *testing.T) {
		_, _, awaiter, _, orch := happyPipeline()
		awaiter.err = &generation.RemoteOperationError{Message: "filtered"}

		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
		})
		var stageErr *generation.StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != generation.StagePoll {
			t.Fatalf("err = %v, want StageError at %q", err, generation.StagePoll)
		}
		var remoteErr *generation.RemoteOperationError
		if !errors.As(err, &remoteErr) {
			t.Errorf("stage error should wrap the RemoteOperationError, got %v", err)
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		_, _, _, fetcher, orch := happyPipeline()
		fetcher.err = &generation.FetchError{Status: 403, Reason: "forbidden"}

		_, err := orch.ComposeScene(context.Background(), SceneInput{
			InfluencerDescription: "an influencer",
			Scenario:              "a kitchen",
			Title:                 "T", Action: "A", Dialogue: "D",
		})
		var stageErr *generation.StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != generation.StageFetch {
			t.Fatalf("err = %v, want StageError at %q", err, generation.StageFetch)
		}
	})
}
