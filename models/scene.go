package models

import (
	"time"
)

// Scene durations accepted by the video model, in seconds.
var AllowedDurations = []int{5, 6, 7, 8}

// Aspect ratios accepted by the video model.
var AllowedAspectRatios = []string{"9:16", "16:9", "1:1"}

// ValidDuration reports whether d is a duration the video model accepts.
// Zero is valid: it means "use the default".
func ValidDuration(d int) bool {
	if d == 0 {
		return true
	}
	for _, allowed := range AllowedDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// ValidAspectRatio reports whether r is an aspect ratio the video model
// accepts. Empty is valid: it means "use the default".
func ValidAspectRatio(r string) bool {
	if r == "" {
		return true
	}
	for _, allowed := range AllowedAspectRatios {
		if r == allowed {
			return true
		}
	}
	return false
}

// Scene is a stored scene specification. Scenario is the only required
// input; title, action and dialogue may be left blank and synthesized at
// render time.
type Scene struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AvatarID uint   `gorm:"index" json:"avatar_id"`
	Title    string `json:"title"`
	Scenario string `gorm:"type:text;not null" json:"scenario"`
	Action   string `gorm:"type:text" json:"action"`
	Dialogue string `gorm:"type:text" json:"dialogue"`

	CameraAngle     string `json:"camera_angle"`
	DurationSeconds int    `gorm:"default:5" json:"duration_seconds"`
	AspectRatio     string `gorm:"default:'9:16'" json:"aspect_ratio"`

	// On-screen text policy. AllowDigitalText permits overlay captions,
	// PhysicalTextOnly restricts text to labels and signs inside the scene.
	AllowDigitalText bool `json:"allow_digital_text"`
	PhysicalTextOnly bool `json:"physical_text_only"`

	ReferenceImage string `gorm:"type:text" json:"reference_image,omitempty"`
	NegativePrompt string `gorm:"type:text" json:"negative_prompt,omitempty"`

	// Quality enhancement flags.
	Hyperrealism       bool `json:"hyperrealism"`
	FourK              bool `json:"four_k"`
	ProfessionalCamera bool `json:"professional_camera"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Scene) TableName() string {
	return "scenes"
}

// HasFullNarrative reports whether title, action and dialogue are all
// present, in which case the narrative generation call can be skipped.
func (s Scene) HasFullNarrative() bool {
	return s.Title != "" && s.Action != "" && s.Dialogue != ""
}
