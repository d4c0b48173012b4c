package models

import (
	"time"
)

// SceneJob statuses. The worker walks a job through these in order; a
// failure freezes the job at failed_<stage>.
const (
	JobStatusPending             = "pending"
	JobStatusProcessingNarrative = "processing_narrative"
	JobStatusProcessingVideo     = "processing_video"
	JobStatusPolling             = "polling"
	JobStatusFetching            = "fetching"
	JobStatusComplete            = "complete"
)

// SceneJob tracks one asynchronous scene-render request from submission
// to a finished video. The request payload is frozen at enqueue time so
// later gallery edits cannot change an in-flight render.
type SceneJob struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"uniqueIndex;not null" json:"public_id"`
	Kind     string `gorm:"default:'scene'" json:"kind"` // scene | script
	Status   string `gorm:"default:'pending'" json:"status"`

	// Frozen request payload, JSON-encoded.
	Payload string `gorm:"type:text" json:"-"`

	// Narrative actually used for the video, synthesized where missing.
	ResolvedTitle    string `json:"resolved_title,omitempty"`
	ResolvedAction   string `gorm:"type:text" json:"resolved_action,omitempty"`
	ResolvedDialogue string `gorm:"type:text" json:"resolved_dialogue,omitempty"`

	VideoDataURI string `gorm:"type:text" json:"video_data_uri,omitempty"`
	Error        string `gorm:"type:text" json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SceneJob) TableName() string {
	return "scene_jobs"
}
