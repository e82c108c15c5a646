package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func columnSize(t *testing.T, model any, field string) int {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	f := s.LookUpField(field)
	require.NotNil(t, f, field)
	return f.Size
}

func TestUsernameColumn(t *testing.T) {
	assert.Equal(t, MaxUsernameLen, columnSize(t, &User{}, "Username"))
}

// Login and registration entries store the username as the entity id.
func TestAuditEntityIDHoldsUsername(t *testing.T) {
	assert.GreaterOrEqual(t, columnSize(t, &AuditLog{}, "EntityID"), columnSize(t, &User{}, "Username"))
}

func TestListedRecordsCarrySeq(t *testing.T) {
	for _, model := range []any{
		&AttendanceRecord{}, &AlertItem{}, &PTORequest{}, &OTRequest{},
		&BillingRecord{}, &ContractRecord{}, &CustomerRecord{},
	} {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		f := s.LookUpField("Seq")
		require.NotNil(t, f, s.Name)
		assert.Equal(t, "seq", f.DBName, s.Name)
	}
}
