package model

import "regexp"

var (
	whitespace         = regexp.MustCompile(`\s+`)
	recipientSeparator = regexp.MustCompile(`[\n,;]+`)
)

// RecipientList is a free-form list of addresses separated by commas,
// semicolons or newlines.
type RecipientList string

// Emails returns the addresses with all whitespace removed.
func (r RecipientList) Emails() []string {
	var emails []string
	for _, e := range recipientSeparator.Split(whitespace.ReplaceAllString(string(r), ""), -1) {
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// Invalid returns the entries that are not email addresses.
func (r RecipientList) Invalid() []string {
	var invalid []string
	for _, e := range r.Emails() {
		if !EmailPattern.MatchString(e) {
			invalid = append(invalid, e)
		}
	}
	return invalid
}

func (r RecipientList) String() string { return string(r) }
