package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUserCode(t *testing.T) {
	cases := []struct {
		role Role
		seq  int
		want string
	}{
		{RoleAdmin, 1, "ADM001"},
		{RoleEmployee, 1, "INT001"},
		{RoleEmployee, 2, "INT002"},
		{RoleAdmin, 42, "ADM042"},
		{RoleEmployee, 123, "INT123"},
		{RoleEmployee, 1000, "INT1000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatUserCode(c.role, c.seq))
	}
}

func TestRoleCodePrefix(t *testing.T) {
	assert.Equal(t, "ADM", RoleAdmin.CodePrefix())
	assert.Equal(t, "INT", RoleEmployee.CodePrefix())
}
