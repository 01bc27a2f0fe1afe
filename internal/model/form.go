package model

import (
	"encoding/json"
	"strings"
)

// SkillList accepts both input shapes the frontend has historically sent:
// a JSON array of strings or a single comma-delimited string.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = arr
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*s = strings.Split(single, ",")
		return nil
	}
	// any other shape (null, number, object) is treated as no skills
	*s = nil
	return nil
}

// Normalize trims each skill and drops blanks, preserving order.
func (s SkillList) Normalize() SkillList {
	if len(s) == 0 {
		return nil
	}
	out := make(SkillList, 0, len(s))
	for _, sk := range s {
		if t := strings.TrimSpace(sk); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

type EducationEntry struct {
	Institute    string `json:"institute"`
	City         string `json:"city"`
	EduType      string `json:"eduType"`
	EduTypeOther string `json:"eduTypeOther,omitempty"`
	Department   string `json:"department"`
	StartYear    string `json:"startYear"`
	EndYear      string `json:"endYear"`
	Score        string `json:"score"`
	ScoreType    string `json:"scoreType"`
}

type ExperienceEntry struct {
	Role       string `json:"role"`
	Company    string `json:"company"`
	Duration   string `json:"duration"`
	Activities string `json:"activities"`
}

// HasContent reports whether the entry carries anything worth rendering.
func (e ExperienceEntry) HasContent() bool {
	return anyNonBlank(e.Role, e.Company, e.Duration, e.Activities)
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Technologies string   `json:"technologies"`
	KeyPoints    []string `json:"keyPoints"`
}

func (p ProjectEntry) HasContent() bool {
	if anyNonBlank(p.Name, p.Description, p.Link, p.Technologies) {
		return true
	}
	return len(p.NonBlankKeyPoints()) > 0
}

// NonBlankKeyPoints filters out blank bullet lines before display.
func (p ProjectEntry) NonBlankKeyPoints() []string {
	var out []string
	for _, kp := range p.KeyPoints {
		if strings.TrimSpace(kp) != "" {
			out = append(out, kp)
		}
	}
	return out
}

type CertificateEntry struct {
	Title      string `json:"title"`
	IssuedBy   string `json:"issuedBy"`
	IssuedOn   string `json:"issuedOn"`
	Credential string `json:"credential"`
}

func (c CertificateEntry) HasContent() bool {
	return anyNonBlank(c.Title, c.IssuedBy, c.IssuedOn, c.Credential)
}

type LanguageEntry struct {
	Language string `json:"language"`
	Read     bool   `json:"read"`
	Write    bool   `json:"write"`
	Speak    bool   `json:"speak"`
}

func (l LanguageEntry) HasContent() bool {
	return strings.TrimSpace(l.Language) != ""
}

// ResumeForm is the full résumé record submitted for export.
type ResumeForm struct {
	Name             string             `json:"name"`
	Role             string             `json:"role"`
	City             string             `json:"city"`
	State            string             `json:"state"`
	Pincode          string             `json:"pincode"`
	EmailID          string             `json:"emailId"`
	PhoneNo          string             `json:"phoneNo"`
	LinkedIn         string             `json:"linkedIn"`
	PortfolioLink    string             `json:"portfolioLink"`
	Nationality      string             `json:"nationality"`
	AvailabilityType string             `json:"availabilityType"`
	NoticePeriod     string             `json:"noticePeriod"`
	AvailableFrom    string             `json:"availableFromDate"`
	Skills           SkillList          `json:"skills"`
	Education        []EducationEntry   `json:"education"`
	Experience       []ExperienceEntry  `json:"experience"`
	Projects         []ProjectEntry     `json:"projects"`
	Certificates     []CertificateEntry `json:"certificates"`
	Languages        []LanguageEntry    `json:"languages"`
}

func anyNonBlank(vals ...string) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
