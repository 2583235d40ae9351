package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// EnhanceSkills rewrites the two-level skills list. The list is serialized
// to JSON, submitted as one section, and the response parsed back into the
// same structure. A malformed response yields a *ParseError; the caller
// keeps its prior list.
func EnhanceSkills(ctx context.Context, e Enhancer, groups []resume.SkillGroup) ([]resume.SkillGroup, error) {
	payload, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize skills: %w", err)
	}

	text, err := e.EnhanceSection(ctx, "skills", string(payload))
	if err != nil {
		return nil, err
	}

	var enhanced []resume.SkillGroup
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &enhanced); err != nil {
		return nil, &ParseError{Err: err}
	}
	return enhanced, nil
}

// cleanJSONBlock strips markdown code fences the provider tends to wrap
// JSON responses in.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
