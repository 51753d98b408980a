package models

// AIPersonality selects the assistant's tone.
type AIPersonality string

const (
	PersonalityFriendly  AIPersonality = "friendly"
	PersonalitySuperhero AIPersonality = "superhero"
	PersonalityRobot     AIPersonality = "robot"
)

// Settings is the per-user preference bag. Stored records may be partial;
// readers merge them over DefaultSettings so new fields pick up their
// defaults on old data.
type Settings struct {
	ParentEmail        string        `json:"parentEmail"`
	EnableEmailSummary bool          `json:"enableEmailSummary"`
	Theme              string        `json:"theme"`
	FontSize           string        `json:"fontSize"`
	Language           string        `json:"language"`
	Notifications      bool          `json:"notifications"`
	AIPersonality      AIPersonality `json:"aiPersonality"`
}

// DefaultSettings returns the central defaults every stored record is
// merged under.
func DefaultSettings() Settings {
	return Settings{
		ParentEmail:        "",
		EnableEmailSummary: false,
		Theme:              "light",
		FontSize:           "md",
		Language:           "en",
		Notifications:      true,
		AIPersonality:      PersonalityFriendly,
	}
}
