package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

func memberAccount(t *testing.T, role account.Role) account.Account {
	t.Helper()
	acct, err := account.NewMemberAccount(kernel.NewUUID(), kernel.NewUUID(), role)
	require.NoError(t, err)
	return acct
}

func citizenAccount(t *testing.T) account.Account {
	t.Helper()
	acct, err := account.NewCitizenAccount(kernel.NewUUID())
	require.NoError(t, err)
	return acct
}

func Test_NewMemberAccount(t *testing.T) {
	userID := kernel.NewUUID()
	orgID := kernel.NewUUID()

	acct, err := account.NewMemberAccount(userID, orgID, account.RoleDriver)

	require.NoError(t, err)
	assert.Equal(t, account.KindMember, acct.Kind())
	assert.Equal(t, userID, acct.UserID())
	assert.Equal(t, orgID, acct.OrganizationID())
	assert.Equal(t, account.RoleDriver, acct.Role())
}

func Test_NewMemberAccount_InvalidRole(t *testing.T) {
	_, err := account.NewMemberAccount(kernel.NewUUID(), kernel.NewUUID(), account.Role("auditor"))

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_NewCitizenAccount(t *testing.T) {
	userID := kernel.NewUUID()

	acct, err := account.NewCitizenAccount(userID)

	require.NoError(t, err)
	assert.Equal(t, account.KindCitizen, acct.Kind())
	assert.Equal(t, userID, acct.UserID())
}

func Test_Account_MustBeConstructed(t *testing.T) {
	var acct account.Account

	assert.Error(t, acct.Validate())
	assert.Error(t, acct.Authorize())
	assert.Error(t, acct.AuthorizeCitizen())
}

func Test_Authorize_EmptyAllowListAdmitsAnyAuthenticatedCaller(t *testing.T) {
	for _, role := range []account.Role{
		account.RoleOwner, account.RoleAdmin, account.RoleSupervisor, account.RoleDriver,
	} {
		assert.NoError(t, memberAccount(t, role).Authorize(), string(role))
	}
	assert.NoError(t, citizenAccount(t).Authorize())
}

func Test_Authorize_OwnerBypassesEveryAllowList(t *testing.T) {
	owner := memberAccount(t, account.RoleOwner)

	assert.NoError(t, owner.Authorize(account.RoleAdmin))
	assert.NoError(t, owner.Authorize(account.RoleDriver))
	assert.NoError(t, owner.Authorize(account.RoleAdmin, account.RoleSupervisor))
}

func Test_Authorize_RoleInAllowList(t *testing.T) {
	supervisor := memberAccount(t, account.RoleSupervisor)

	assert.NoError(t, supervisor.Authorize(account.RoleAdmin, account.RoleSupervisor))
}

func Test_Authorize_RoleNotInAllowList(t *testing.T) {
	driver := memberAccount(t, account.RoleDriver)

	err := driver.Authorize(account.RoleAdmin, account.RoleSupervisor)

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func Test_Authorize_CitizenDeniedByAnyNonEmptyAllowList(t *testing.T) {
	citizen := citizenAccount(t)

	for _, allowed := range []account.Role{
		account.RoleOwner, account.RoleAdmin, account.RoleSupervisor, account.RoleDriver,
	} {
		assert.ErrorIs(t, citizen.Authorize(allowed), errs.ErrPermissionDenied, string(allowed))
	}
}

func Test_AuthorizeCitizen(t *testing.T) {
	assert.NoError(t, citizenAccount(t).AuthorizeCitizen())
	assert.ErrorIs(t, memberAccount(t, account.RoleDriver).AuthorizeCitizen(), errs.ErrPermissionDenied)
	assert.ErrorIs(t, memberAccount(t, account.RoleOwner).AuthorizeCitizen(), errs.ErrPermissionDenied)
}
