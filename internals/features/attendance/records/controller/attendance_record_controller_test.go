package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"runcrew_backend/internals/constants"
)

func TestCanLogForMember(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		role   string
		target uuid.UUID
		want   bool
	}{
		{"self without role", "", me, true},
		{"nil target falls back to self", "", uuid.Nil, true},
		{"member cannot log for another", constants.RoleMember, other, false},
		{"no role cannot log for another", "", other, false},
		{"staff logs for another", constants.RoleStaff, other, true},
		{"owner logs for another", constants.RoleOwner, other, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, canLogForMember(tt.role, me, tt.target))
		})
	}
}
