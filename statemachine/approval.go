package statemachine

import (
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
	"github.com/Karthikeyagundu12/Nutrikart/models"
)

// DefaultRejectionReason is recorded when an admin rejects without a reason
const DefaultRejectionReason = "Documents verification failed"

// mandatoryField pairs a field label with an accessor so validation can report
// exactly which fields are missing.
type mandatoryField struct {
	label string
	value func(*models.Restaurant) string
}

var mandatoryFields = []mandatoryField{
	{"name", func(r *models.Restaurant) string { return r.Name }},
	{"contact_number", func(r *models.Restaurant) string { return r.ContactNumber }},
	{"email", func(r *models.Restaurant) string { return r.Email }},
	{"restaurant_type", func(r *models.Restaurant) string { return r.RestaurantType }},
	{"documents.restaurant_license", func(r *models.Restaurant) string { return r.Documents.RestaurantLicense }},
	{"documents.fssai_certificate", func(r *models.Restaurant) string { return r.Documents.FSSAICertificate }},
	{"documents.identity_proof", func(r *models.Restaurant) string { return r.Documents.IdentityProof }},
	{"documents.bank_account_number", func(r *models.Restaurant) string { return r.Documents.BankAccountNumber }},
	{"documents.ifsc_code", func(r *models.Restaurant) string { return r.Documents.IFSCCode }},
}

// ValidateSubmission checks the mandatory business fields and legal documents
// of a vendor-submitted restaurant. Every listed field must be non-empty.
func ValidateSubmission(r *models.Restaurant) error {
	var missing []string
	for _, f := range mandatoryFields {
		if f.value(r) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return apperr.New(apperr.Validation,
			"All mandatory fields are required including legal documents: Restaurant License, FSSAI Certificate, Identity Proof, and Bank Details").
			WithMeta("missing_fields", missing)
	}
	return nil
}

// PrepareSubmission forces the initial approval state on a validated
// restaurant. The submitted status is always pending regardless of input.
func PrepareSubmission(r *models.Restaurant, now time.Time) {
	r.ApprovalStatus = models.ApprovalPending
	r.IsApproved = false
	r.ApprovedAt = nil
	r.RejectionReason = ""
	r.SubmittedAt = now
}

// Approve transitions a restaurant to approved. Re-approving an already
// approved restaurant is a no-op apart from refreshing ApprovedAt.
// A rejected restaurant is terminal: vendors retry with a new submission.
func Approve(r *models.Restaurant, now time.Time) {
	r.ApprovalStatus = models.ApprovalApproved
	r.IsApproved = true
	r.ApprovedAt = &now
}

// Reject transitions a restaurant to rejected, recording why
func Reject(r *models.Restaurant, reason string) {
	if reason == "" {
		reason = DefaultRejectionReason
	}
	r.ApprovalStatus = models.ApprovalRejected
	r.IsApproved = false
	r.RejectionReason = reason
}

// CanMutateMenu gates every menu-item mutation: only approved restaurants may
// have food items. The error reports the current status so the vendor
// understands why the action was blocked.
func CanMutateMenu(r *models.Restaurant) error {
	if r.ApprovalStatus == models.ApprovalApproved {
		return nil
	}
	return apperr.New(apperr.Forbidden,
		"Cannot modify menu. Restaurant is not yet approved.").
		WithMeta("approval_status", r.ApprovalStatus)
}
