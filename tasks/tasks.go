package tasks

import (
	"encoding/json"

	"github.com/Weslleykacau1/AvatarForge/models"
)

// ---
// QUEUE DEFINITIONS
// ---
// We define all queue names as constants here.
const (
	// QueueSceneRender renders a scene job end to end: narrative, video
	// submission, polling, asset download.
	QueueSceneRender = "q_scene_render"

	// QueueScriptRender renders the first scene of a structured script.
	QueueScriptRender = "q_script_render"
)

// ---
// TASK PAYLOADS
// ---
// These are the structs that will be JSON-marshalled and sent to Redis.
// Render requests themselves are frozen on the job row; the queue only
// carries the job reference.

// RenderTaskPayload points the worker at a SceneJob.
type RenderTaskPayload struct {
	JobID string `json:"job_id"`
}

// SceneRenderPayload is the frozen request stored on a scene job. Gallery
// records are resolved at submission time so later edits cannot change an
// in-flight render.
type SceneRenderPayload struct {
	Avatar  models.Avatar   `json:"avatar"`
	Scene   models.Scene    `json:"scene"`
	Product *models.Product `json:"product,omitempty"`
}

// ScriptRenderPayload is the frozen request stored on a script job.
type ScriptRenderPayload struct {
	Script models.Script `json:"script"`
}

// ---
// HELPER FUNCTIONS
// ---

// Marshal creates a JSON payload for a task.
func Marshal(payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
