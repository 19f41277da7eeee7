package issue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

func geoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(-12.05, -77.04)
	require.NoError(t, err)
	return p
}

func Test_NewCitizenIssue(t *testing.T) {
	reporter := kernel.NewUUID()

	i, err := issue.NewCitizenIssue(reporter, "missed_pickup", "bins not collected on Av. Arequipa", geoPoint(t))

	require.NoError(t, err)
	assert.NoError(t, i.Validate())
	assert.Equal(t, issue.StatusOpen, i.Status())
	assert.Equal(t, reporter, i.ReporterID())
	assert.Nil(t, i.AssignmentID())
}

func Test_NewDriverIssue(t *testing.T) {
	assignmentID := kernel.NewUUID()

	i, err := issue.NewDriverIssue(kernel.NewUUID(), assignmentID, "blocked_street", "construction work", geoPoint(t))

	require.NoError(t, err)
	require.NotNil(t, i.AssignmentID())
	assert.True(t, assignmentID.IsEqual(*i.AssignmentID()))
}

func Test_NewDriverIssue_RequiresAssignment(t *testing.T) {
	_, err := issue.NewDriverIssue(kernel.NewUUID(), kernel.UUID{}, "blocked_street", "construction", geoPoint(t))

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_NewIssue_Invalid(t *testing.T) {
	_, err := issue.NewCitizenIssue(kernel.NewUUID(), "", "description", geoPoint(t))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = issue.NewCitizenIssue(kernel.NewUUID(), "missed_pickup", "  ", geoPoint(t))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = issue.NewCitizenIssue(kernel.NewUUID(), "missed_pickup", "description", kernel.GeoPoint{})
	assert.Error(t, err)
}

func Test_Issue_SetStatus(t *testing.T) {
	i, err := issue.NewCitizenIssue(kernel.NewUUID(), "missed_pickup", "description", geoPoint(t))
	require.NoError(t, err)

	require.NoError(t, i.SetStatus(issue.StatusInProgress))
	assert.Equal(t, issue.StatusInProgress, i.Status())

	require.NoError(t, i.SetStatus(issue.StatusResolved))
	assert.Equal(t, issue.StatusResolved, i.Status())

	assert.Error(t, i.SetStatus(issue.Status("closed")))
	assert.Equal(t, issue.StatusResolved, i.Status())
}
