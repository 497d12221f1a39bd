package sections

import (
	"strings"

	"github.com/tsawler/cvoutline/model"
)

// categoryKeywords are matched as case-insensitive substrings of the heading,
// in order; the first rule with a matching keyword wins
var categoryKeywords = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryEducation, []string{"education", "academic", "qualification"}},
	{model.CategoryExperience, []string{"experience", "employment", "professional", "work history", "career"}},
	{model.CategorySkills, []string{"skills", "abilities", "competencies", "technical skills", "proficiencies"}},
	{model.CategoryPersonalInfo, []string{"contact", "personal details", "email", "phone", "address"}},
}

// Categorize returns the category of a section heading
func Categorize(heading string) model.Category {
	lower := strings.ToLower(heading)
	for _, rule := range categoryKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}

// Classifier turns segments into categorized sections and a CandidateProfile
type Classifier struct{}

// NewClassifier creates a classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify builds the profile for a document. Personal info comes from the
// first block of the first page; contact sections fill in an email or phone
// the first block lacks. Sections are returned in document order.
func (c *Classifier) Classify(doc *model.Document, title string, segments []Segment) (*model.CandidateProfile, []model.Section) {
	profile := model.NewCandidateProfile(title)

	var first *model.Block
	if doc.PageCount() > 0 {
		first = doc.Pages[0].FirstBlock()
	}
	profile.PersonalInfo = ExtractPersonalInfo(first)

	sections := make([]model.Section, 0, len(segments))
	for _, seg := range segments {
		category := Categorize(seg.Heading)
		sections = append(sections, model.Section{
			Heading:    seg.Heading,
			Category:   category,
			Content:    seg.Content,
			Highlights: ExtractHighlights(seg.Content),
		})

		switch category {
		case model.CategoryEducation:
			profile.Education = append(profile.Education, seg.Content)
		case model.CategoryExperience:
			profile.Experience = append(profile.Experience, seg.Content)
		case model.CategorySkills:
			profile.Skills = append(profile.Skills, seg.Content)
		case model.CategoryPersonalInfo:
			fillContact(&profile.PersonalInfo, seg.Content)
		default:
			if prev, ok := profile.Other[seg.Heading]; ok {
				profile.Other[seg.Heading] = prev + " " + seg.Content
			} else {
				profile.Other[seg.Heading] = seg.Content
			}
		}
	}

	return profile, sections
}

// fillContact sets the email and phone from text when still missing
func fillContact(info *model.PersonalInfo, text string) {
	if info.Email == nil {
		info.Email = findEmail(text)
	}
	if info.Phone == nil {
		info.Phone = findPhone(text)
	}
}
