package render

import (
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

func esc(s string) string {
	return template.HTMLEscapeString(strings.TrimSpace(s))
}

// ensureHTTP gives bare links an https:// prefix so anchors stay clickable.
func ensureHTTP(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if !strings.HasPrefix(link, "http") {
		return "https://" + link
	}
	return link
}

// joinPresent joins the non-blank segments with sep so missing fields never
// leave a dangling separator.
func joinPresent(sep string, segments ...string) string {
	var present []string
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			present = append(present, strings.TrimSpace(s))
		}
	}
	return strings.Join(present, sep)
}

// Header renders name, role and a single contact line.
func Header(f model.ResumeForm) string {
	var b strings.Builder
	b.WriteString(`<div class="header">`)
	if n := esc(f.Name); n != "" {
		fmt.Fprintf(&b, `<h1>%s</h1>`, n)
	}
	if r := esc(f.Role); r != "" {
		fmt.Fprintf(&b, `<div class="role">%s</div>`, r)
	}

	location := joinPresent(", ", f.City, f.State, f.Pincode)
	var segs []string
	if location != "" {
		segs = append(segs, esc(location))
	}
	if e := esc(f.EmailID); e != "" {
		segs = append(segs, e)
	}
	if p := esc(f.PhoneNo); p != "" {
		segs = append(segs, p)
	}
	if l := ensureHTTP(f.LinkedIn); l != "" {
		segs = append(segs, fmt.Sprintf(`<a href="%s">LinkedIn</a>`, esc(l)))
	}
	if l := ensureHTTP(f.PortfolioLink); l != "" {
		segs = append(segs, fmt.Sprintf(`<a href="%s">Portfolio</a>`, esc(l)))
	}
	if len(segs) > 0 {
		fmt.Fprintf(&b, `<div class="contact">%s</div>`, strings.Join(segs, " | "))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Summary renders the already-cleaned summary text verbatim.
func Summary(cleaned string) string {
	if strings.TrimSpace(cleaned) == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="section"><h2>SUMMARY</h2><p>%s</p></div>`, esc(cleaned))
}

func Experience(f model.ResumeForm) string {
	var entries []string
	for _, e := range f.Experience {
		if !e.HasContent() {
			continue
		}
		var b strings.Builder
		b.WriteString(`<div class="entry">`)
		line := esc(e.Role)
		if d := esc(e.Duration); d != "" {
			if line != "" {
				line += " "
			}
			line += fmt.Sprintf(`<span class="duration">%s Year</span>`, d)
		}
		if line != "" {
			fmt.Fprintf(&b, `<div class="entry-title">%s</div>`, line)
		}
		if c := esc(e.Company); c != "" {
			fmt.Fprintf(&b, `<div class="subtitle">%s</div>`, c)
		}
		if a := esc(e.Activities); a != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, a)
		}
		b.WriteString(`</div>`)
		entries = append(entries, b.String())
	}
	if len(entries) == 0 {
		return ""
	}
	return `<div class="section"><h2>EXPERIENCE</h2>` + strings.Join(entries, "") + `</div>`
}

func Projects(f model.ResumeForm) string {
	var entries []string
	for _, p := range f.Projects {
		if !p.HasContent() {
			continue
		}
		var b strings.Builder
		b.WriteString(`<div class="entry">`)
		line := esc(p.Name)
		if l := ensureHTTP(p.Link); l != "" {
			if line != "" {
				line += " "
			}
			line += fmt.Sprintf(`<a href="%s">%s</a>`, esc(l), esc(l))
		}
		if line != "" {
			fmt.Fprintf(&b, `<div class="entry-title">%s</div>`, line)
		}
		if d := esc(p.Description); d != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, d)
		}
		if kps := p.NonBlankKeyPoints(); len(kps) > 0 {
			b.WriteString(`<ul>`)
			for _, kp := range kps {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(kp))
			}
			b.WriteString(`</ul>`)
		}
		if t := esc(p.Technologies); t != "" {
			fmt.Fprintf(&b, `<div class="tech">Tech Used: %s</div>`, t)
		}
		b.WriteString(`</div>`)
		entries = append(entries, b.String())
	}
	if len(entries) == 0 {
		return ""
	}
	return `<div class="section"><h2>PROJECTS</h2>` + strings.Join(entries, "") + `</div>`
}

// Education is never suppressed: with no entries it still renders its heading
// and a literal placeholder.
func Education(f model.ResumeForm) string {
	var b strings.Builder
	b.WriteString(`<div class="section"><h2>EDUCATION</h2>`)
	if len(f.Education) == 0 {
		b.WriteString(`<p class="placeholder">no education details</p>`)
	}
	for _, e := range f.Education {
		b.WriteString(`<div class="entry">`)
		years := joinPresent(" - ", e.StartYear, e.EndYear)
		line := esc(e.Institute)
		if years != "" {
			if line != "" {
				line += " "
			}
			line += fmt.Sprintf(`<span class="duration">%s</span>`, esc(years))
		}
		if line != "" {
			fmt.Fprintf(&b, `<div class="entry-title">%s</div>`, line)
		}
		score := joinPresent(" ", e.Score, e.ScoreType)
		if detail := joinPresent(" | ", e.EduType, e.Department, score); detail != "" {
			fmt.Fprintf(&b, `<div class="subtitle">%s</div>`, esc(detail))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func Skills(f model.ResumeForm) string {
	if len(f.Skills) == 0 {
		return ""
	}
	escaped := make([]string, len(f.Skills))
	for i, s := range f.Skills {
		escaped[i] = esc(s)
	}
	return fmt.Sprintf(`<div class="section"><h2>SKILLS</h2><p>%s</p></div>`, strings.Join(escaped, ", "))
}

func Certificates(f model.ResumeForm) string {
	var entries []string
	for _, c := range f.Certificates {
		if !c.HasContent() {
			continue
		}
		var b strings.Builder
		b.WriteString(`<div class="entry">`)
		line := esc(c.Title)
		if d := esc(c.IssuedOn); d != "" {
			if line != "" {
				line += " "
			}
			line += fmt.Sprintf(`<span class="duration">%s</span>`, d)
		}
		if line != "" {
			fmt.Fprintf(&b, `<div class="entry-title">%s</div>`, line)
		}
		if iss := esc(c.IssuedBy); iss != "" {
			fmt.Fprintf(&b, `<div class="subtitle">%s</div>`, iss)
		}
		if l := ensureHTTP(c.Credential); l != "" {
			fmt.Fprintf(&b, `<div class="tech"><a href="%s">%s</a></div>`, esc(l), esc(l))
		}
		b.WriteString(`</div>`)
		entries = append(entries, b.String())
	}
	if len(entries) == 0 {
		return ""
	}
	return `<div class="section"><h2>CERTIFICATES</h2>` + strings.Join(entries, "") + `</div>`
}

// AdditionalInfo renders languages, nationality and availability. The whole
// section disappears only when all three blocks are absent.
func AdditionalInfo(f model.ResumeForm) string {
	var blocks []string

	var langs []string
	for _, l := range f.Languages {
		if !l.HasContent() {
			continue
		}
		var abilities []string
		if l.Read {
			abilities = append(abilities, "Read")
		}
		if l.Write {
			abilities = append(abilities, "Write")
		}
		if l.Speak {
			abilities = append(abilities, "Speak")
		}
		suffix := "(Not specified)"
		if len(abilities) > 0 {
			suffix = "(" + strings.Join(abilities, ", ") + ")"
		}
		langs = append(langs, fmt.Sprintf(`<li>%s %s</li>`, esc(l.Language), suffix))
	}
	if len(langs) > 0 {
		blocks = append(blocks, `<div class="block"><strong>Languages</strong><ul>`+strings.Join(langs, "")+`</ul></div>`)
	}

	if n := esc(f.Nationality); n != "" {
		blocks = append(blocks, fmt.Sprintf(`<div class="block"><strong>Nationality</strong> %s</div>`, n))
	}

	if avail := availabilityText(f); avail != "" {
		blocks = append(blocks, fmt.Sprintf(`<div class="block"><strong>Availability</strong> %s</div>`, esc(avail)))
	}

	if len(blocks) == 0 {
		return ""
	}
	return `<div class="section"><h2>ADDITIONAL INFORMATION</h2>` + strings.Join(blocks, "") + `</div>`
}

func availabilityText(f model.ResumeForm) string {
	switch strings.TrimSpace(f.AvailabilityType) {
	case "":
		return ""
	case "Notice Period":
		return "Notice Period for " + strings.TrimSpace(f.NoticePeriod)
	case "Available From":
		return "Available from " + strings.TrimSpace(f.AvailableFrom)
	default:
		return strings.TrimSpace(f.AvailabilityType)
	}
}
