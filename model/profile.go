package model

// Category classifies a resume section by its heading
type Category string

const (
	CategoryPersonalInfo Category = "personal_info"
	CategoryExperience   Category = "experience"
	CategoryEducation    Category = "education"
	CategorySkills       Category = "skills"
	CategoryOther        Category = "other"
)

// Highlights are the short sentences and action verbs found in a section
type Highlights struct {
	ShortSentences []string `json:"short_sentences"`
	ActionWords    []string `json:"action_words"`
}

// Section is the text lying between two consecutive headings
type Section struct {
	Heading    string     `json:"heading"`
	Category   Category   `json:"category"`
	Content    string     `json:"content"`
	Highlights Highlights `json:"highlights"`
}

// PersonalInfo holds contact fields taken from the top of the document.
// Email and Phone are nil when no match was found.
type PersonalInfo struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	RawText string  `json:"raw_text"`
}

// CandidateProfile is the structured result of processing one resume.
// The JSON field names are consumed by downstream services and must not change.
type CandidateProfile struct {
	Title        string            `json:"title"`
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Experience   []string          `json:"experience"`
	Education    []string          `json:"education"`
	Skills       []string          `json:"skills"`
	Other        map[string]string `json:"other"`
}

// NewCandidateProfile returns a profile whose lists and map are non-nil, so
// that they serialise as [] and {} rather than null.
func NewCandidateProfile(title string) *CandidateProfile {
	return &CandidateProfile{
		Title:      title,
		Experience: []string{},
		Education:  []string{},
		Skills:     []string{},
		Other:      map[string]string{},
	}
}

// SectionCount returns the number of classified sections held by the profile
func (p *CandidateProfile) SectionCount() int {
	if p == nil {
		return 0
	}
	return len(p.Experience) + len(p.Education) + len(p.Skills) + len(p.Other)
}
