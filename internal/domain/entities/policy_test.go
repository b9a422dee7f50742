package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/domain/values"
)

func Test_NewPolicy(t *testing.T) {
	policy, err := NewPolicy("Access Control Policy", "All access is least-privilege.")
	require.NoError(t, err)

	assert.False(t, policy.ID.IsZero())
	assert.Equal(t, values.PolicyDraft, policy.Status)
	assert.Equal(t, "1.0.0", policy.Version.String())
	assert.Zero(t, policy.ApproverCount())
}

func Test_NewPolicy_Validation(t *testing.T) {
	_, err := NewPolicy("", "body")
	assert.Error(t, err)

	_, err = NewPolicy("   ", "body")
	assert.Error(t, err)

	_, err = NewPolicy(strings.Repeat("x", 301), "body")
	assert.Error(t, err)
}

func Test_Policy_AddApprover(t *testing.T) {
	policy, err := NewPolicy("Data Retention Policy", "")
	require.NoError(t, err)

	require.NoError(t, policy.AddApprover("alice"))
	require.NoError(t, policy.AddApprover("bob"))
	assert.Equal(t, 2, policy.ApproverCount())

	// Duplicates are ignored
	require.NoError(t, policy.AddApprover("alice"))
	assert.Equal(t, 2, policy.ApproverCount())

	assert.Error(t, policy.AddApprover("  "))
}

func Test_Policy_LinkControl(t *testing.T) {
	policy, err := NewPolicy("Encryption Policy", "")
	require.NoError(t, err)

	controlID := values.NewRecordID()
	require.NoError(t, policy.LinkControl(controlID))
	require.NoError(t, policy.LinkControl(controlID))
	assert.Len(t, policy.ControlIDs, 1)

	assert.Error(t, policy.LinkControl(values.RecordID{}))
}

func Test_Policy_NewRevision(t *testing.T) {
	policy, err := NewPolicy("Incident Response Policy", "")
	require.NoError(t, err)

	require.NoError(t, policy.AddApprover("alice"))
	policy.SetStatus(values.PolicyPublished)

	require.NoError(t, policy.NewRevision(BumpMinor))
	assert.Equal(t, "1.1.0", policy.Version.String())
	assert.Equal(t, values.PolicyDraft, policy.Status)
	assert.Zero(t, policy.ApproverCount())

	require.NoError(t, policy.NewRevision(BumpMajor))
	assert.Equal(t, "2.0.0", policy.Version.String())

	assert.Error(t, policy.NewRevision(RevisionBump("patch")))
}
