package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/orchestrator"
	"github.com/Weslleykacau1/AvatarForge/tasks"
)

// stageStatus maps pipeline stages to job statuses.
var stageStatus = map[string]string{
	generation.StageNarrative: models.JobStatusProcessingNarrative,
	generation.StageSubmit:    models.JobStatusProcessingVideo,
	generation.StagePoll:      models.JobStatusPolling,
	generation.StageFetch:     models.JobStatusFetching,
}

// HandleSceneRender processes tasks from QueueSceneRender: it runs the
// full orchestration for the job's frozen scene payload and stores the
// outcome on the job row.
func (p *Processor) HandleSceneRender(ctx context.Context, payload string) error {
	job, err := p.loadJob(payload)
	if err != nil {
		return err
	}

	var req tasks.SceneRenderPayload
	if err := json.Unmarshal([]byte(job.Payload), &req); err != nil {
		p.failJob(job, "failed_payload", err)
		return err
	}

	log.Printf("Rendering scene job %s (scene %q)", job.PublicID, req.Scene.Title)

	input := orchestrator.SceneInput{
		InfluencerDescription: req.Avatar.Description(),
		Scenario:              req.Scene.Scenario,
		Title:                 req.Scene.Title,
		Action:                req.Scene.Action,
		Dialogue:              req.Scene.Dialogue,
		Accent:                req.Avatar.Accent,
		CameraAngle:           req.Scene.CameraAngle,
		DurationSeconds:       req.Scene.DurationSeconds,
		AspectRatio:           req.Scene.AspectRatio,
		AllowDigitalText:      req.Scene.AllowDigitalText,
		PhysicalTextOnly:      req.Scene.PhysicalTextOnly,
		Hyperrealism:          req.Scene.Hyperrealism,
		FourK:                 req.Scene.FourK,
		ProfessionalCamera:    req.Scene.ProfessionalCamera,
		NegativePrompt:        joinNegativePrompts(req.Avatar.NegativePrompt, req.Scene.NegativePrompt),
		ReferenceImage:        req.Scene.ReferenceImage,
		Product:               req.Product,
	}

	result, err := p.runJob(ctx, job, func(ctx context.Context) (*orchestrator.Result, error) {
		return p.Orchestrator.ComposeScene(ctx, input)
	})
	if err != nil {
		return err
	}

	p.completeJob(job, result)
	return nil
}

// HandleScriptRender processes tasks from QueueScriptRender.
func (p *Processor) HandleScriptRender(ctx context.Context, payload string) error {
	job, err := p.loadJob(payload)
	if err != nil {
		return err
	}

	var req tasks.ScriptRenderPayload
	if err := json.Unmarshal([]byte(job.Payload), &req); err != nil {
		p.failJob(job, "failed_payload", err)
		return err
	}

	log.Printf("Rendering script job %s (%q, %d scenes)", job.PublicID, req.Script.Title, len(req.Script.Scenes))

	result, err := p.runJob(ctx, job, func(ctx context.Context) (*orchestrator.Result, error) {
		return p.Orchestrator.ComposeFromScript(ctx, req.Script)
	})
	if err != nil {
		return err
	}

	p.completeJob(job, result)
	return nil
}

// runJob executes the orchestration with stage progress reflected into the
// job status, and translates a failure into a terminal failed_<stage>
// status.
func (p *Processor) runJob(ctx context.Context, job *models.SceneJob, run func(ctx context.Context) (*orchestrator.Result, error)) (*orchestrator.Result, error) {
	p.Orchestrator.Progress = func(stage string) {
		if status, ok := stageStatus[stage]; ok {
			p.DB.Model(job).Update("status", status)
		}
	}
	defer func() { p.Orchestrator.Progress = nil }()

	result, err := run(ctx)
	if err != nil {
		p.failJob(job, failureStatus(err), err)
		return nil, err
	}
	return result, nil
}

func (p *Processor) loadJob(payload string) (*models.SceneJob, error) {
	var task tasks.RenderTaskPayload
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		return nil, err
	}

	var job models.SceneJob
	if err := p.DB.First(&job, "public_id = ?", task.JobID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (p *Processor) completeJob(job *models.SceneJob, result *orchestrator.Result) {
	p.DB.Model(job).Updates(map[string]interface{}{
		"status":            models.JobStatusComplete,
		"resolved_title":    result.Title,
		"resolved_action":   result.Action,
		"resolved_dialogue": result.Dialogue,
		"video_data_uri":    result.VideoDataURI,
	})
	log.Printf("Job %s complete (%d byte video URI)", job.PublicID, len(result.VideoDataURI))
}

func (p *Processor) failJob(job *models.SceneJob, status string, err error) {
	p.DB.Model(job).Updates(map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})
	log.Printf("Job %s failed (%s): %v", job.PublicID, status, err)
}

// failureStatus derives the terminal job status from the failing stage.
func failureStatus(err error) string {
	var stageErr *generation.StageError
	if errors.As(err, &stageErr) {
		return "failed_" + stageErr.Stage
	}
	var validationErr *generation.ValidationError
	if errors.As(err, &validationErr) {
		return "failed_validation"
	}
	return "failed"
}

func joinNegativePrompts(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + ", " + b
	}
}
