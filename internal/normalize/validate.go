package normalize

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PlausibleEmail reports whether the address is syntactically plausible.
// An empty address is not implausible; absence is handled by completeness
// rules, not here.
func PlausibleEmail(email string) bool {
	if email == "" {
		return true
	}
	return validate.Var(email, "email") == nil
}

// plausibleOrEmpty keeps a plausible email and degrades anything else to "",
// the same per-field rule every other malformed value follows. A canonical
// document's email is therefore always plausible or absent.
func plausibleOrEmpty(email string) string {
	if PlausibleEmail(email) {
		return email
	}
	return ""
}

// ContactIssues returns human-readable guidance for contact fields that look
// malformed. These are advisory only; the normalizer never rejects input.
func ContactIssues(contact types.Contact) []string {
	var issues []string
	if !PlausibleEmail(contact.Email) {
		issues = append(issues, fmt.Sprintf("email %q does not look like a valid address", contact.Email))
	}
	if contact.Website != "" && validate.Var(contact.Website, "url|hostname") != nil {
		issues = append(issues, fmt.Sprintf("website %q does not look like a valid URL", contact.Website))
	}
	return issues
}
