package models

// ScriptCharacter describes the on-camera character of a structured script.
type ScriptCharacter struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance"`
	Style      string `json:"style"`
}

// ScriptScene is one ordered scene of a structured script.
type ScriptScene struct {
	ID              int     `json:"id"`
	VisualPrompt    string  `json:"visual_prompt"`
	CameraDirection string  `json:"camera_direction"`
	Expression      string  `json:"expression"`
	Dialogue        string  `json:"dialogue"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
}

// ProductIntegration is the optional sponsorship block of a script.
type ProductIntegration struct {
	IsPresent              bool   `json:"is_present"`
	ProductName            string `json:"product_name,omitempty"`
	IntegrationDescription string `json:"integration_description,omitempty"`
}

// Script is a fully structured render request: a character plus an
// ordered list of scenes with per-scene direction and timing.
type Script struct {
	Character          ScriptCharacter     `json:"character"`
	Title              string              `json:"title"`
	Format             string              `json:"format,omitempty"`
	DurationSeconds    float64             `json:"duration_seconds,omitempty"`
	Language           string              `json:"language,omitempty"`
	Scenes             []ScriptScene       `json:"scenes"`
	ProductIntegration *ProductIntegration `json:"product_integration,omitempty"`
}
