package apply

import (
	"fmt"
	"strings"

	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/profile"
)

const coverLetterTemplate = `Dear Hiring Manager,

I am writing to express my interest in the %s position at %s. With my background in %s, I believe I would be a great addition to your team.

I am particularly drawn to this role because it aligns with my career goals and interests. My experience with similar challenges has prepared me to make an immediate contribution to your team.

Thank you for considering my application. I look forward to the opportunity to discuss how my skills and experience align with your needs.

Sincerely,
%s`

// GenerateCoverLetter fills the template from the job and the resume's
// headline skills.
func GenerateCoverLetter(j job.Record, resume profile.Resume) string {
	return fmt.Sprintf(coverLetterTemplate, j.Title, j.Company, headlineSkills(resume), resume.PersonalInfo.Name)
}

func headlineSkills(resume profile.Resume) string {
	skills := resume.Skills["programming_languages"]
	if len(skills) == 0 {
		for _, category := range resume.Skills {
			if len(category) > 0 {
				skills = category
				break
			}
		}
	}
	if len(skills) > 3 {
		skills = skills[:3]
	}
	if len(skills) == 0 {
		return "software engineering"
	}
	return strings.Join(skills, ", ")
}
