package generator

import (
	"context"
	"fmt"
)

const summaryPromptLimit = 200

// MockGenerator is the reference backend: a pure string substitution
// into the fixed schema. Deterministic for a given prompt.
type MockGenerator struct{}

// Generate builds the document from the prompt without any external
// calls.
func (MockGenerator) Generate(ctx context.Context, prompt, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_ = title

	excerpt := prompt
	if len(excerpt) > summaryPromptLimit {
		excerpt = excerpt[:summaryPromptLimit]
	}

	doc := Document{
		Header: Header{
			Name:     "Alex Thompson",
			Title:    "Software Engineer",
			Email:    "alex.thompson@email.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
		},
		Summary: fmt.Sprintf("Experienced professional with expertise derived from: %s...", excerpt),
		Experience: []Experience{
			{
				Title:   "Senior Software Engineer",
				Company: "TechCorp Inc.",
				Period:  "2020 - Present",
				Achievements: []string{
					"Led development of scalable applications",
					"Mentored junior developers",
					"Improved system performance by 40%",
				},
			},
		},
		Skills: []string{"JavaScript", "React", "Node.js", "MongoDB", "AWS"},
		Education: Education{
			Degree: "Bachelor of Science in Computer Science",
			School: "University of Technology",
			Period: "2014 - 2018",
		},
	}

	return doc.Encode()
}

var _ Generator = MockGenerator{}
