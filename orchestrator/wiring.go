package orchestrator

import (
	"context"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/processing"
	"github.com/Weslleykacau1/AvatarForge/video"
)

// textNarrative adapts the structured text client to the
// NarrativeGenerator interface.
type textNarrative struct {
	tc *generation.TextClient
}

func (n textNarrative) GenerateSceneDetails(ctx context.Context, influencerDescription, scenario string) (*processing.SceneDetails, error) {
	return processing.GenerateSceneDetails(ctx, n.tc, influencerDescription, scenario)
}

// NewFromEnv wires a production orchestrator: OpenAI structured text for
// the narrative, Veo for video, the default 5 s poller, and an
// authenticated media fetcher. Missing credentials surface here, at call
// time.
func NewFromEnv(videoModel string) (*Orchestrator, error) {
	tc, err := generation.NewTextClient()
	if err != nil {
		return nil, err
	}
	veo, err := video.NewVeoClient(videoModel)
	if err != nil {
		return nil, err
	}
	return New(
		textNarrative{tc: tc},
		veo,
		video.NewPoller(veo, video.DefaultPollInterval, video.DefaultMaxAttempts),
		video.NewFetcher(veo.APIKey()),
	), nil
}
