package reports

import "time"

// Tip is one piece of feedback with a polarity and optional explanation.
// The ATS category's tips carry no explanation, so it is omitted when empty.
type Tip struct {
	Type        string `json:"type"`
	Tip         string `json:"tip"`
	Explanation string `json:"explanation,omitempty"`
}

// SkillMatch records whether a skill from the job description appears in the resume.
type SkillMatch struct {
	Skill   string `json:"skill"`
	Present bool   `json:"present"`
}

// Category is a scored feedback category.
type Category struct {
	Score int   `json:"score"`
	Tips  []Tip `json:"tips"`
}

// ATSCategory holds ATS compatibility tips without a score.
type ATSCategory struct {
	Tips []Tip `json:"tips"`
}

// Fields is the canonical scan output: every field is always defined,
// defaulted to 0 / empty when the generator omitted it.
type Fields struct {
	ResumeText          string       `json:"resumeText"`
	MatchScore          int          `json:"matchScore"`
	MissingKeywords     []string     `json:"missingKeywords"`
	FormattingIssues    []string     `json:"formattingIssues"`
	ContentSuggestions  []string     `json:"contentSuggestions"`
	ExperienceAlignment string       `json:"experienceAlignment"`
	HardSkillsMatch     []SkillMatch `json:"hardSkillsMatch"`
	SoftSkillsMatch     []SkillMatch `json:"softSkillsMatch"`
	Skills              Category     `json:"skills"`
	ToneAndStyle        Category     `json:"toneAndStyle"`
	Content             Category     `json:"content"`
	Structure           Category     `json:"structure"`
	ATS                 ATSCategory  `json:"ATS"`
}

// Report is the persisted ATS report. Fields are flattened into the
// report's JSON representation, matching the scan response shape.
type Report struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	Fields
	CreatedAt time.Time `json:"createdAt"`
}

const (
	BandLow    = "low"
	BandMedium = "medium"
	BandHigh   = "high"
)

// Band maps a score to the dashboard's display band.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}
