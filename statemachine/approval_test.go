package statemachine

import (
	"testing"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRestaurant() *models.Restaurant {
	return &models.Restaurant{
		Name:           "Spice Garden",
		ContactNumber:  "9876543210",
		Email:          "owner@spicegarden.example",
		RestaurantType: "Both",
		Documents: models.LegalDocuments{
			RestaurantLicense: "LIC-001",
			FSSAICertificate:  "FSSAI-001",
			IdentityProof:     "AADHAAR-001",
			BankAccountNumber: "123456789012",
			IFSCCode:          "HDFC0001234",
		},
	}
}

func TestValidateSubmissionComplete(t *testing.T) {
	assert.NoError(t, ValidateSubmission(completeRestaurant()))
}

func TestValidateSubmissionMissingDocuments(t *testing.T) {
	r := completeRestaurant()
	r.Documents.FSSAICertificate = ""
	r.Documents.IFSCCode = ""

	err := ValidateSubmission(r)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.ElementsMatch(t,
		[]string{"documents.fssai_certificate", "documents.ifsc_code"},
		ae.Meta["missing_fields"])
}

func TestValidateSubmissionMissingBusinessFields(t *testing.T) {
	r := completeRestaurant()
	r.Name = ""
	r.RestaurantType = ""

	err := ValidateSubmission(r)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestPrepareSubmissionForcesPending(t *testing.T) {
	r := completeRestaurant()
	// A client-supplied approved status must be overridden
	r.ApprovalStatus = models.ApprovalApproved
	r.IsApproved = true

	now := time.Now()
	PrepareSubmission(r, now)

	assert.Equal(t, models.ApprovalPending, r.ApprovalStatus)
	assert.False(t, r.IsApproved)
	assert.Nil(t, r.ApprovedAt)
	assert.Equal(t, now, r.SubmittedAt)
}

func TestApprove(t *testing.T) {
	r := completeRestaurant()
	PrepareSubmission(r, time.Now())

	now := time.Now()
	Approve(r, now)

	assert.Equal(t, models.ApprovalApproved, r.ApprovalStatus)
	assert.True(t, r.IsApproved)
	require.NotNil(t, r.ApprovedAt)
	assert.Equal(t, now, *r.ApprovedAt)
	assert.NoError(t, CanMutateMenu(r))
}

func TestReApproveRefreshesTimestamp(t *testing.T) {
	r := completeRestaurant()
	first := time.Now().Add(-time.Hour)
	Approve(r, first)
	second := time.Now()
	Approve(r, second)

	assert.Equal(t, models.ApprovalApproved, r.ApprovalStatus)
	require.NotNil(t, r.ApprovedAt)
	assert.Equal(t, second, *r.ApprovedAt)
}

func TestRejectWithReason(t *testing.T) {
	r := completeRestaurant()
	PrepareSubmission(r, time.Now())

	Reject(r, "FSSAI certificate expired")

	assert.Equal(t, models.ApprovalRejected, r.ApprovalStatus)
	assert.False(t, r.IsApproved)
	assert.Equal(t, "FSSAI certificate expired", r.RejectionReason)
}

func TestRejectDefaultReason(t *testing.T) {
	r := completeRestaurant()
	Reject(r, "")
	assert.Equal(t, DefaultRejectionReason, r.RejectionReason)
}

func TestCanMutateMenuBlocksNonApproved(t *testing.T) {
	for _, status := range []models.ApprovalStatus{models.ApprovalPending, models.ApprovalRejected} {
		r := completeRestaurant()
		r.ApprovalStatus = status

		err := CanMutateMenu(r)
		require.Error(t, err, "status %s", status)
		assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

		var ae *apperr.Error
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, status, ae.Meta["approval_status"])
	}
}
