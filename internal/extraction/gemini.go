package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/types"
)

// GeminiExtractor extracts resume content directly through an LLM client
// instead of the parsing service. Used when running without the service
// tier (CLI workflows, local development).
type GeminiExtractor struct {
	client llm.Client
}

// NewGeminiExtractor creates an LLM-backed extractor.
func NewGeminiExtractor(client llm.Client) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

// Extract prompts the model for a structured resume document and
// normalizes the response. The model output is treated like any other
// untrusted payload.
func (e *GeminiExtractor) Extract(ctx context.Context, resumeText string) (types.Document, error) {
	if strings.TrimSpace(resumeText) == "" {
		return types.Document{}, &Error{Source: "gemini", Message: "empty resume text"}
	}

	prompt := buildExtractionPrompt(resumeText)
	jsonResp, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.Document{}, &Error{Source: "gemini", Message: "generation failed", Cause: err}
	}

	return normalize.Payload([]byte(llm.CleanJSONBlock(jsonResp))), nil
}

// buildExtractionPrompt constructs the extraction prompt with the
// expected output shape inlined.
func buildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract structured resume data from the text below.

Return ONLY a JSON object with this shape:
{
  "contact": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": "", "github": ""},
  "summary": "",
  "experience": [{"company": "", "position": "", "location": "", "start_date": "", "end_date": "", "description": ""}],
  "education": [{"institution": "", "degree": "", "field": "", "start_year": "", "end_year": ""}],
  "skills": [{"category": "", "items": [""]}],
  "projects": [{"name": "", "description": "", "technologies": [""]}],
  "certifications": [{"name": "", "issuer": "", "year": ""}],
  "languages": [{"name": "", "proficiency": ""}],
  "achievements": [{"title": "", "description": ""}]
}

Omit fields that are not present in the text. Do not invent content.

Resume text:
%s`, resumeText)
}
