package model

import "strings"

// NormalizeEducation canonicalizes the "Other" education type: when an entry
// carries eduType "Other" and a non-blank free-text override, the trimmed
// override becomes the entry's eduType. Everything else passes through
// untouched. Order and length of the slice are preserved, and running it on
// an already-normalized slice is a no-op.
func NormalizeEducation(entries []EducationEntry) []EducationEntry {
	if len(entries) == 0 {
		return entries
	}
	out := make([]EducationEntry, len(entries))
	for i, e := range entries {
		if e.EduType == "Other" {
			if other := strings.TrimSpace(e.EduTypeOther); other != "" {
				e.EduType = other
			}
		}
		out[i] = e
	}
	return out
}

// Normalized returns a copy of the form with education and skills in
// canonical shape. Renderers only ever see the result of this call.
func (f ResumeForm) Normalized() ResumeForm {
	f.Education = NormalizeEducation(f.Education)
	f.Skills = f.Skills.Normalize()
	return f
}
