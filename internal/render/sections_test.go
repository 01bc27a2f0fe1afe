package render_test

import (
	"strings"
	"testing"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func TestHeader_NoDanglingSeparators(t *testing.T) {
	h := render.Header(model.ResumeForm{Name: "Ada", EmailID: "ada@example.com"})
	if strings.Contains(h, "| |") || strings.HasSuffix(h, "| ") {
		t.Errorf("dangling separator in header: %s", h)
	}
	if !strings.Contains(h, "ada@example.com") {
		t.Errorf("email missing from header: %s", h)
	}

	full := render.Header(model.ResumeForm{
		Name: "Ada", City: "London", EmailID: "a@b.c", PhoneNo: "123",
	})
	if strings.Count(full, " | ") != 2 {
		t.Errorf("expected exactly 2 separators for 3 segments: %s", full)
	}
}

func TestHeader_LinkPrefix(t *testing.T) {
	h := render.Header(model.ResumeForm{Name: "Ada", LinkedIn: "linkedin.com/in/ada"})
	if !strings.Contains(h, `href="https://linkedin.com/in/ada"`) {
		t.Errorf("bare link not prefixed: %s", h)
	}
	h = render.Header(model.ResumeForm{Name: "Ada", PortfolioLink: "http://ada.dev"})
	if !strings.Contains(h, `href="http://ada.dev"`) {
		t.Errorf("http link must pass through untouched: %s", h)
	}
}

func TestSummary_Suppression(t *testing.T) {
	if got := render.Summary("   "); got != "" {
		t.Errorf("blank summary should render nothing, got %q", got)
	}
	got := render.Summary("Brilliant engineer")
	if !strings.Contains(got, "SUMMARY") || !strings.Contains(got, "Brilliant engineer") {
		t.Errorf("summary fragment incomplete: %s", got)
	}
}

func TestExperience_SuppressedWhenAllBlank(t *testing.T) {
	f := model.ResumeForm{Experience: []model.ExperienceEntry{{}, {Role: "  "}}}
	if got := render.Experience(f); got != "" {
		t.Errorf("all-blank experience should be suppressed, got %s", got)
	}
}

func TestExperience_DurationUnit(t *testing.T) {
	f := model.ResumeForm{Experience: []model.ExperienceEntry{
		{Role: "Engineer", Company: "Acme", Duration: "2", Activities: "Built things"},
	}}
	got := render.Experience(f)
	if !strings.Contains(got, "EXPERIENCE") {
		t.Fatalf("heading missing: %s", got)
	}
	if !strings.Contains(got, "2 Year") {
		t.Errorf("duration missing Year unit: %s", got)
	}
	if !strings.Contains(got, "Acme") || !strings.Contains(got, "Built things") {
		t.Errorf("company or activities missing: %s", got)
	}
}

func TestExperience_ActivitiesOnlyWhenPresent(t *testing.T) {
	f := model.ResumeForm{Experience: []model.ExperienceEntry{{Role: "Engineer"}}}
	if got := render.Experience(f); strings.Contains(got, "<p>") {
		t.Errorf("blank activities should not emit a paragraph: %s", got)
	}
}

func TestProjects_Rules(t *testing.T) {
	f := model.ResumeForm{Projects: []model.ProjectEntry{{
		Name:         "Widget",
		Link:         "widget.dev",
		Description:  "A widget",
		Technologies: "Go",
		KeyPoints:    []string{"fast", "  ", "small"},
	}}}
	got := render.Projects(f)
	if !strings.Contains(got, `href="https://widget.dev"`) {
		t.Errorf("project link not auto-prefixed: %s", got)
	}
	if !strings.Contains(got, "Tech Used: Go") {
		t.Errorf("tech line missing: %s", got)
	}
	if strings.Count(got, "<li>") != 2 {
		t.Errorf("blank key points should be filtered: %s", got)
	}

	noTech := model.ResumeForm{Projects: []model.ProjectEntry{{Name: "Widget"}}}
	if strings.Contains(render.Projects(noTech), "Tech Used") {
		t.Error("tech line must be omitted when technologies is blank")
	}

	blank := model.ResumeForm{Projects: []model.ProjectEntry{{KeyPoints: []string{" "}}}}
	if got := render.Projects(blank); got != "" {
		t.Errorf("project with no content should be suppressed, got %s", got)
	}
}

func TestEducation_NeverSuppressed(t *testing.T) {
	got := render.Education(model.ResumeForm{})
	if !strings.Contains(got, "EDUCATION") {
		t.Fatalf("education heading must always render: %s", got)
	}
	if !strings.Contains(got, "no education details") {
		t.Errorf("placeholder missing for empty education: %s", got)
	}
}

func TestEducation_DetailLine(t *testing.T) {
	f := model.ResumeForm{Education: []model.EducationEntry{{
		Institute: "MIT", StartYear: "2018", EndYear: "2022",
		EduType: "Bachelors", Department: "CS", Score: "3.9", ScoreType: "GPA",
	}}}
	got := render.Education(f)
	if !strings.Contains(got, "2018 - 2022") {
		t.Errorf("year range missing: %s", got)
	}
	if !strings.Contains(got, "Bachelors | CS | 3.9 GPA") {
		t.Errorf("detail line malformed: %s", got)
	}

	sparse := model.ResumeForm{Education: []model.EducationEntry{{Institute: "MIT", Department: "CS"}}}
	got = render.Education(sparse)
	if strings.Contains(got, "| |") || strings.Contains(got, ">| ") {
		t.Errorf("blank sub-fields left separators behind: %s", got)
	}
}

func TestSkills_JoinAndSuppression(t *testing.T) {
	if got := render.Skills(model.ResumeForm{}); got != "" {
		t.Errorf("empty skills should render nothing, got %q", got)
	}
	got := render.Skills(model.ResumeForm{Skills: model.SkillList{"Go", "Rust"}})
	if !strings.Contains(got, "Go, Rust") {
		t.Errorf("skills not joined with comma-space: %s", got)
	}
}

func TestCertificates_CredentialLink(t *testing.T) {
	f := model.ResumeForm{Certificates: []model.CertificateEntry{{
		Title: "CKA", IssuedBy: "CNCF", IssuedOn: "2024", Credential: "verify.cncf.io/123",
	}}}
	got := render.Certificates(f)
	if !strings.Contains(got, `href="https://verify.cncf.io/123"`) {
		t.Errorf("credential link not auto-prefixed: %s", got)
	}
	if !strings.Contains(got, "CNCF") || !strings.Contains(got, "2024") {
		t.Errorf("issuer or date missing: %s", got)
	}
}

func TestAdditionalInfo_Languages(t *testing.T) {
	f := model.ResumeForm{Languages: []model.LanguageEntry{
		{Language: "English", Read: true, Speak: true},
		{Language: "French"},
		{Read: true}, // nameless, must be dropped
	}}
	got := render.AdditionalInfo(f)
	if !strings.Contains(got, "English (Read, Speak)") {
		t.Errorf("ability list malformed: %s", got)
	}
	if !strings.Contains(got, "French (Not specified)") {
		t.Errorf("no-ability fallback missing: %s", got)
	}
	if strings.Count(got, "<li>") != 2 {
		t.Errorf("nameless language should be dropped: %s", got)
	}
}

func TestAdditionalInfo_Availability(t *testing.T) {
	cases := []struct {
		form model.ResumeForm
		want string
	}{
		{model.ResumeForm{AvailabilityType: "Notice Period", NoticePeriod: "30 days"}, "Notice Period for 30 days"},
		{model.ResumeForm{AvailabilityType: "Available From", AvailableFrom: "2026-09-01"}, "Available from 2026-09-01"},
		{model.ResumeForm{AvailabilityType: "Immediate"}, "Immediate"},
	}
	for _, c := range cases {
		got := render.AdditionalInfo(c.form)
		if !strings.Contains(got, c.want) {
			t.Errorf("availability %q: want %q in %s", c.form.AvailabilityType, c.want, got)
		}
	}
}

func TestAdditionalInfo_SuppressedOnlyWhenAllBlocksAbsent(t *testing.T) {
	if got := render.AdditionalInfo(model.ResumeForm{}); got != "" {
		t.Errorf("expected empty fragment, got %s", got)
	}
	if got := render.AdditionalInfo(model.ResumeForm{Nationality: "Irish"}); !strings.Contains(got, "Irish") {
		t.Errorf("nationality-only block should render the section: %s", got)
	}
}
