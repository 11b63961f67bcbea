// Package profile defines the business profile submitted by a user.
package profile

import "strings"

// BusinessProfile describes the user's business. All fields are free text
// exactly as the user typed them; matching against persona keywords happens
// case-insensitively downstream. The struct is request-scoped and never
// persisted by this codebase.
type BusinessProfile struct {
	CompanyName    string `json:"company_name"`
	Industry       string `json:"industry"`
	TargetAudience string `json:"target_audience"`
	PrimaryGoal    string `json:"primary_goal"`
	MainChallenge  string `json:"main_challenge"`
	MainProducts   string `json:"main_products"`
}

// FreeText returns the concatenated product and audience fields, lowercased,
// used for keyword scanning.
func (p BusinessProfile) FreeText() string {
	return strings.ToLower(p.MainProducts + " " + p.TargetAudience)
}
