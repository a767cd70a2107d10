// Package validate implements the validate-and-clean stage: per-field
// acceptance rules for contact data plus soft business-info checks.
// Failures are data, not control flow; they accumulate into the report.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadqual/model"
	"github.com/sells-group/leadqual/normalize"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// companyNamePlaceholders are scraper sentinels that count as "no name".
var companyNamePlaceholders = map[string]bool{
	"unknown": true,
	"n/a":     true,
	"none":    true,
}

// Validator applies the per-lead validation rules.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateLead checks a single lead and returns the validation report.
// Invalid phones are pruned from the lead's contact information as a
// side effect of validation (warned, not errored); invalid emails are
// kept but reported as errors. A lead with no surviving contact channel
// is never valid, whatever else it carries.
func (v *Validator) ValidateLead(lead *model.Lead) model.ValidationResults {
	results := model.ValidationResults{
		OverallValid:       true,
		ValidationErrors:   []string{},
		ValidationWarnings: []string{},
	}

	biz := v.validateBusinessInfo(lead.BusinessInformation)
	results.BusinessValidation = biz
	results.ValidationWarnings = append(results.ValidationWarnings, biz.Errors...)
	results.ValidationWarnings = append(results.ValidationWarnings, biz.Warnings...)

	contact := v.validateContactInfo(&lead.ContactInformation)
	results.ContactValidation = contact
	if len(contact.Errors) > 0 {
		results.ValidationErrors = append(results.ValidationErrors, contact.Errors...)
		results.OverallValid = false
	}
	results.ValidationWarnings = append(results.ValidationWarnings, contact.Warnings...)

	// Channel check runs after phone pruning: a lead whose only phones
	// were just removed has no usable contact method left.
	ci := lead.ContactInformation
	if len(ci.Phones) == 0 && len(ci.Emails) == 0 && len(ci.Websites) == 0 {
		results.OverallValid = false
		results.ValidationErrors = append(results.ValidationErrors, "No contact method available")
	}

	return results
}

// validateContactInfo checks emails and phones. Phones that fail the
// digit rules are removed from the lead in place.
func (v *Validator) validateContactInfo(ci *model.ContactInfo) model.CheckResult {
	result := model.CheckResult{Valid: true, Errors: []string{}, Warnings: []string{}}

	for _, email := range ci.Emails {
		if !ValidEmail(email.Value) {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid email: %s", email.Value))
		}
	}

	valid := make([]model.PhoneEvidence, 0, len(ci.Phones))
	for _, phone := range ci.Phones {
		if ValidPhone(phone.Value) {
			valid = append(valid, phone)
			continue
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid phone removed: %s", phone.Value))
		zap.L().Debug("validate: invalid phone removed", zap.String("value", phone.Value))
	}
	ci.Phones = valid

	result.Valid = len(result.Errors) == 0
	return result
}

// validateBusinessInfo applies the soft business checks. These only ever
// produce warnings; business info alone never invalidates a lead.
func (v *Validator) validateBusinessInfo(bi model.BusinessInfo) model.CheckResult {
	result := model.CheckResult{Valid: true, Errors: []string{}, Warnings: []string{}}

	name := strings.TrimSpace(bi.CompanyName)
	if name == "" || companyNamePlaceholders[strings.ToLower(name)] {
		result.Warnings = append(result.Warnings, "Missing or invalid company name")
	}

	industry := strings.TrimSpace(bi.Industry)
	if industry == "" || industry == "general" {
		result.Warnings = append(result.Warnings, "Industry not classified")
	}

	return result
}

// ValidEmail reports whether the value passes the syntactic email check.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}

// ValidPhone reports whether the value's digit string passes the phone
// rules: 7-15 digits and not a single repeated digit.
func ValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	return ValidPhoneDigits(normalize.Phone(phone))
}

// ValidPhoneDigits applies the phone rules to a digits-only string.
func ValidPhoneDigits(digits string) bool {
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	distinct := make(map[rune]bool, 10)
	for _, d := range digits {
		distinct[d] = true
	}
	return len(distinct) > 1
}
