package models

import (
	"time"
)

// Avatar is a synthetic-influencer persona stored in the gallery.
// Free-text fields feed prompt composition verbatim; images are
// self-describing data URIs so records stay self-contained.
type Avatar struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"not null" json:"name"`
	Niche             string `json:"niche"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	Accent            string `json:"accent"`
	ShortBio          string `gorm:"type:text" json:"short_bio"`
	UniqueTrait       string `gorm:"type:text" json:"unique_trait"`
	PersonalityTraits string `gorm:"type:text" json:"personality_traits"`
	AppearanceDetails string `gorm:"type:text" json:"appearance_details"`
	Clothing          string `gorm:"type:text" json:"clothing"`
	ReferenceImage    string `gorm:"type:text" json:"reference_image,omitempty"`
	NegativePrompt    string `gorm:"type:text" json:"negative_prompt,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Avatar) TableName() string {
	return "avatars"
}

// Description flattens the persona into the influencer description block
// used by the narrative and video prompts.
func (a Avatar) Description() string {
	return "Name: " + orDefault(a.Name, "Not specified") + "\n" +
		"Niche: " + orDefault(a.Niche, "Not specified") + "\n" +
		"Age: " + orDefault(a.Age, "Not specified") + "\n" +
		"Gender: " + orDefault(a.Gender, "Not specified") + "\n" +
		"Short Bio: " + orDefault(a.ShortBio, "Not specified") + "\n" +
		"Unique Trait: " + orDefault(a.UniqueTrait, "Not specified") + "\n" +
		"Personality Traits: " + orDefault(a.PersonalityTraits, "Not specified") + "\n" +
		"Physical Appearance: " + orDefault(a.AppearanceDetails, "Not specified") + "\n" +
		"Clothing: " + orDefault(a.Clothing, "Not specified")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
