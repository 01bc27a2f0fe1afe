package render

import (
	"strings"

	"resume-builder/internal/model"
)

// stylesheet is shared by every section. The page is self-contained: no
// external resources are referenced, so the rasterizer never waits on the
// network.
const stylesheet = `
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11pt; color: #1a1a1a; margin: 28px; }
h1 { font-size: 22pt; margin: 0 0 2px 0; }
h2 { font-size: 13pt; border-bottom: 1px solid #444; padding-bottom: 2px; margin: 14px 0 6px 0; letter-spacing: 1px; }
p { text-align: justify; overflow-wrap: break-word; word-break: break-word; margin: 4px 0; }
a { color: #0b5394; text-decoration: none; overflow-wrap: break-word; }
ul { margin: 4px 0 4px 18px; padding: 0; }
li { margin: 2px 0; overflow-wrap: break-word; }
.header { text-align: center; }
.role { font-size: 13pt; color: #444; }
.contact { font-size: 10pt; margin-top: 4px; }
.section { margin-top: 8px; }
.entry { margin: 6px 0; }
.entry-title { font-weight: bold; }
.duration { float: right; font-weight: normal; font-size: 10pt; color: #555; }
.subtitle { font-size: 10.5pt; color: #333; }
.tech { font-size: 10pt; color: #333; }
.placeholder { color: #777; font-style: italic; }
.block { margin: 4px 0; }
`

// Assemble joins the section fragments in their fixed order into one
// self-contained HTML document. Identical input yields byte-identical output.
func Assemble(f model.ResumeForm, cleanedSummary string) string {
	fragments := []string{
		Header(f),
		Summary(cleanedSummary),
		Experience(f),
		Projects(f),
		Education(f),
		Skills(f),
		Certificates(f),
		AdditionalInfo(f),
	}

	var body []string
	for _, fr := range fragments {
		if fr != "" {
			body = append(body, fr)
		}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	b.WriteString(stylesheet)
	b.WriteString("</style></head><body>")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("</body></html>")
	return b.String()
}
