// Package prompts renders personas, scenes and products into the exact
// prompt text sent to the generation models. Every function here is pure:
// the same input always produces byte-identical output, so prompts can be
// asserted in tests and cached safely. Missing optional fields render as
// explicit default markers instead of being omitted.
package prompts

import (
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/models"
)

// Default markers for optional fields. Kept stable: changing any of these
// changes every composed prompt.
const (
	DefaultDialogue    = "No dialogue."
	DefaultAccent      = "Padrão"
	DefaultCameraAngle = "Dynamic Camera"
	DefaultAspectRatio = "9:16"
	DefaultDuration    = 5
)

// VideoRequest carries the fully resolved inputs for the composite
// video-generation prompt. Title, action and dialogue must already be
// resolved; missing optional presentation fields fall back to defaults.
type VideoRequest struct {
	SceneTitle string
	Scenario   string
	Action     string
	Dialogue   string
	Accent     string

	CameraAngle     string
	DurationSeconds int
	AspectRatio     string

	AllowDigitalText bool
	PhysicalTextOnly bool

	Hyperrealism       bool
	FourK              bool
	ProfessionalCamera bool

	NegativePrompt string
	ReferenceImage string // optional scene reference, data URI
}

// VideoConfig is the structured configuration passed alongside the video
// prompt to the video model.
type VideoConfig struct {
	DurationSeconds int
	AspectRatio     string
	NegativePrompt  string
}

// ComposeVideoPrompt renders the single composite instruction block for the
// video generator plus its structured configuration.
func ComposeVideoPrompt(req VideoRequest) (string, VideoConfig) {
	dialogue := req.Dialogue
	if dialogue == "" {
		dialogue = DefaultDialogue
	}
	accent := req.Accent
	if accent == "" {
		accent = DefaultAccent
	}
	camera := req.CameraAngle
	if camera == "" {
		camera = DefaultCameraAngle
	}
	format := req.AspectRatio
	if format == "" {
		format = DefaultAspectRatio
	}
	duration := req.DurationSeconds
	if duration == 0 {
		duration = DefaultDuration
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scene Title: %s\n", req.SceneTitle)
	fmt.Fprintf(&b, "Scenario and Influencer Details: %s\n", req.Scenario)
	fmt.Fprintf(&b, "Main Action: %s\n", req.Action)
	fmt.Fprintf(&b, "Dialogue: %s\n", dialogue)
	fmt.Fprintf(&b, "Accent: %s\n", accent)
	fmt.Fprintf(&b, "Camera Angle: %s\n", camera)
	fmt.Fprintf(&b, "Video Format: %s\n", format)
	fmt.Fprintf(&b, "Allow Digital On-Screen Text: %s\n", yesNo(req.AllowDigitalText))
	fmt.Fprintf(&b, "Allow Only Physical Text (labels, signs): %s\n", yesNo(req.PhysicalTextOnly))
	if quality := qualityDirectives(req); quality != "" {
		fmt.Fprintf(&b, "Quality: %s\n", quality)
	}
	b.WriteString("Generate a video of the described influencer in the specified scenario, performing the main action and speaking the dialogue.")

	return b.String(), VideoConfig{
		DurationSeconds: duration,
		AspectRatio:     format,
		NegativePrompt:  req.NegativePrompt,
	}
}

func qualityDirectives(req VideoRequest) string {
	var parts []string
	if req.Hyperrealism {
		parts = append(parts, "hyperrealistic")
	}
	if req.FourK {
		parts = append(parts, "4k high resolution")
	}
	if req.ProfessionalCamera {
		parts = append(parts, "shot on a professional cinema camera")
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// ComposeScenario merges the influencer description with the scenario text
// the way the video prompt expects them combined.
func ComposeScenario(influencerDescription, scenario string) string {
	return fmt.Sprintf("%s\n\n**Cenário:** %s", influencerDescription, scenario)
}

// ComposeProductOverlay renders a product placement block that is appended
// to the scenario text before video composition.
func ComposeProductOverlay(p models.Product) string {
	partnership := "No"
	if p.IsPartnership {
		partnership = "Yes"
	}
	return fmt.Sprintf(`**Product Placement:**
Product Name: %s
Partner Brand: %s
Product Description: %s
Sponsored Partnership: %s
The influencer must feature this product naturally in the scene.`,
		orNotSpecified(p.Name),
		orNotSpecified(p.PartnerBrand),
		orNotSpecified(p.Description),
		partnership)
}

// ComposeNarrativePrompt builds the single combined instruction that asks
// for the missing title, action and dialogue of a scene.
func ComposeNarrativePrompt(influencerDescription, scenario string) string {
	return fmt.Sprintf(`Based on the following influencer and scenario, generate the details for a compelling video scene.
If a field is already provided in the input, use it instead of generating a new one.

Influencer Description:
%s

Scenario:
%s

Generate a creative and concise title (less than 10 words), a clear and engaging main action, and a short dialogue.
The dialogue must be in Brazilian Portuguese.`, influencerDescription, scenario)
}

// ComposeTitlePrompt asks for a short scene title from free-form context.
func ComposeTitlePrompt(context string) string {
	return fmt.Sprintf(`Based on the following context, generate a short, catchy title for a video scene.
Context: %s

Generate a title that is less than 10 words.`, context)
}

// ComposeActionPrompt asks for the influencer's main action in a scene.
func ComposeActionPrompt(scenario string) string {
	return fmt.Sprintf(`Based on the following scenario, describe a main action for an influencer in a video scene.
Scenario: %s

Describe a clear and engaging action.`, scenario)
}

// ComposeDialoguePrompt asks for scene dialogue in Brazilian Portuguese.
func ComposeDialoguePrompt(context string) string {
	return fmt.Sprintf(`Based on the following context, generate a short and engaging dialogue for an influencer in a video scene. The dialogue must be in Brazilian Portuguese.
Context: %s`, context)
}

// ComposeSEOPrompt asks for SEO copy (title, description, keywords).
func ComposeSEOPrompt(context string) string {
	return fmt.Sprintf(`Based on the following context, generate SEO content for a video. Include a compelling title, a short description, and relevant keywords.
Context: %s`, context)
}

// ComposeScriptPrompt asks for a full video script in the given format
// ("markdown" or "json").
func ComposeScriptPrompt(influencerDetails, sceneDetails, outputFormat string) string {
	return fmt.Sprintf(`You are a professional screenwriter. Create a detailed video script based on the influencer and scene provided.
The script should include scene descriptions, camera directions, dialogues, and actions.
The dialogue must always be in Brazilian Portuguese.

Influencer Details:
%s

Scene Details:
%s

The output must be in %s format.

If the output format is JSON, provide a structured script with keys like "title", "scenes", "camera_angles", "dialogue", "actions".
If the output format is Markdown, use appropriate formatting for titles, scenes, and dialogues.`,
		influencerDetails, sceneDetails, outputFormat)
}

// ComposeScriptScenario renders the first scene of a structured script into
// the scenario block expected by the video prompt.
func ComposeScriptScenario(character models.ScriptCharacter, scene models.ScriptScene) string {
	return fmt.Sprintf(`**Character Name:** %s
**Character Appearance:** %s
**Character Style:** %s

**Scene Description:** %s
**Character Expression:** %s`,
		character.Name, character.Appearance, character.Style,
		scene.VisualPrompt, scene.Expression)
}

// ComposeScriptAction renders a script scene's camera direction as the
// main-action instruction.
func ComposeScriptAction(characterName, cameraDirection string) string {
	return fmt.Sprintf("The character, %s, is performing. %s", characterName, cameraDirection)
}

// Analysis prompts. These pair with an attached image where applicable.

const AvatarAnalysisPrompt = `Analyze the provided image of a person and generate a detailed profile for them as a digital influencer. Fill in all the fields of the output schema based on the image. Be creative but realistic. The influencer should be relatable and have a clear niche.

Also, provide a set of useful, comma-separated negative prompts to avoid common generation errors (like deformed hands, blurry images, etc.).`

const SceneAnalysisPrompt = `Analyze the provided image of a scene and generate a detailed and faithful description.
Focus on the environment, lighting, dominant colors, objects, materials, and the overall atmosphere.
This description will be used to generate a video scene. Ignore any people in the image and focus only on the scenery.`

const ProductAnalysisPrompt = `Analyze the provided image of a product and extract its details for a sponsored placement. Identify the product name, the most likely partner brand, and write a short marketing description of the product as seen in the image.`

// ComposeTextAnalysisPrompt asks the model to extract an influencer's name
// and niche from a free-form description.
func ComposeTextAnalysisPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text description of an influencer and extract their name and niche.
Text: %s`, text)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
