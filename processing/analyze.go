package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/prompts"
)

// AvatarProfile is the structured result of analyzing a reference photo
// into a full influencer persona.
type AvatarProfile struct {
	Name              string `json:"name" jsonschema_description:"The influencer's name"`
	Niche             string `json:"niche" jsonschema_description:"The influencer's niche (e.g., Fashion, Games, Tech)"`
	Characteristics   string `json:"characteristics" jsonschema_description:"A summary of the most notable characteristics of the influencer"`
	PersonalityTraits string `json:"personality_traits" jsonschema_description:"A description of the influencer's personality traits"`
	AppearanceDetails string `json:"appearance_details" jsonschema_description:"A very detailed description of the influencer's physical appearance"`
	Clothing          string `json:"clothing" jsonschema_description:"A description of the clothes, shoes, and accessories the character is wearing"`
	ShortBio          string `json:"short_bio" jsonschema_description:"A short biography for the influencer"`
	UniqueTrait       string `json:"unique_trait" jsonschema_description:"A unique or peculiar trait that makes the influencer stand out"`
	Age               string `json:"age" jsonschema_description:"The estimated age of the influencer"`
	Gender            string `json:"gender" jsonschema_description:"The gender of the influencer (Masculino, Feminino, Não-binário, Outro)"`
	NegativePrompt    string `json:"negative_prompt" jsonschema_description:"A comma-separated list of common negative prompts to improve generation quality"`
}

func (p *AvatarProfile) Validate() error {
	if p.Name == "" || p.AppearanceDetails == "" {
		return fmt.Errorf("missing name or appearance details")
	}
	return nil
}

// SceneDescription is the structured result of analyzing a scene photo.
type SceneDescription struct {
	Description string `json:"description" jsonschema_description:"A detailed and faithful description of the scene, including lighting, colors, objects, materials, and overall atmosphere"`
}

func (d *SceneDescription) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("missing description")
	}
	return nil
}

// ProductDetails is the structured result of analyzing a product photo.
type ProductDetails struct {
	ProductName        string `json:"product_name" jsonschema_description:"The product's name"`
	PartnerBrand       string `json:"partner_brand" jsonschema_description:"The product's brand"`
	ProductDescription string `json:"product_description" jsonschema_description:"A detailed description of the product"`
}

func (d *ProductDetails) Validate() error {
	if d.ProductName == "" {
		return fmt.Errorf("missing product name")
	}
	return nil
}

// TextProfile is the structured result of analyzing a free-form influencer
// description.
type TextProfile struct {
	Name  string `json:"name" jsonschema_description:"The influencer's name"`
	Niche string `json:"niche" jsonschema_description:"The influencer's niche (e.g., Fashion, Games)"`
}

func (p *TextProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}
	return nil
}

var (
	avatarProfileSchema    = generation.GenerateSchema[AvatarProfile]()
	sceneDescriptionSchema = generation.GenerateSchema[SceneDescription]()
	productDetailsSchema   = generation.GenerateSchema[ProductDetails]()
	textProfileSchema      = generation.GenerateSchema[TextProfile]()
)

// AnalyzeAvatarImage builds a full influencer profile from a reference
// photo supplied as a data URI.
func AnalyzeAvatarImage(ctx context.Context, tc *generation.TextClient, photoDataURI string) (*AvatarProfile, error) {
	return generation.StructuredWithImage[AvatarProfile](ctx, tc,
		"avatar_profile",
		"A digital influencer profile extracted from a photo",
		prompts.AvatarAnalysisPrompt, photoDataURI, avatarProfileSchema)
}

// AnalyzeSceneImage describes the scenery of a photo, ignoring any people
// in it.
func AnalyzeSceneImage(ctx context.Context, tc *generation.TextClient, photoDataURI string) (*SceneDescription, error) {
	return generation.StructuredWithImage[SceneDescription](ctx, tc,
		"scene_description",
		"A faithful description of a scene photo",
		prompts.SceneAnalysisPrompt, photoDataURI, sceneDescriptionSchema)
}

// AnalyzeProductImage extracts product placement details from a photo.
func AnalyzeProductImage(ctx context.Context, tc *generation.TextClient, photoDataURI string) (*ProductDetails, error) {
	return generation.StructuredWithImage[ProductDetails](ctx, tc,
		"product_details",
		"Product details extracted from a photo",
		prompts.ProductAnalysisPrompt, photoDataURI, productDetailsSchema)
}

// AnalyzeText extracts an influencer's name and niche from a free-form
// description.
func AnalyzeText(ctx context.Context, tc *generation.TextClient, text string) (*TextProfile, error) {
	return generation.Structured[TextProfile](ctx, tc,
		"text_profile",
		"Influencer name and niche extracted from text",
		prompts.ComposeTextAnalysisPrompt(text), textProfileSchema)
}
