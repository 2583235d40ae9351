package enhance

import (
	"context"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// EnhanceDocument rewrites every textual field of a resume: the summary,
// then each experience accomplishment, then each education description, in
// that fixed order. Empty fields are skipped. The first failure aborts the
// whole pass and only the error is returned — the caller never receives a
// partially enhanced document.
func EnhanceDocument(ctx context.Context, e Enhancer, doc resume.Document) (resume.Document, error) {
	out := doc.Clone()

	if out.Summary != "" {
		text, err := e.EnhanceSection(ctx, "summary", out.Summary)
		if err != nil {
			return resume.Document{}, err
		}
		out.Summary = text
	}

	for i := range out.Experience {
		if out.Experience[i].Accomplishment == "" {
			continue
		}
		text, err := e.EnhanceSection(ctx, "experience", out.Experience[i].Accomplishment)
		if err != nil {
			return resume.Document{}, err
		}
		out.Experience[i].Accomplishment = text
	}

	for i := range out.Education {
		if out.Education[i].Description == "" {
			continue
		}
		text, err := e.EnhanceSection(ctx, "education", out.Education[i].Description)
		if err != nil {
			return resume.Document{}, err
		}
		out.Education[i].Description = text
	}

	return out, nil
}
