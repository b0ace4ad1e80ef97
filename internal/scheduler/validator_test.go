package scheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

func TestValidate(t *testing.T) {
	c216 := course(t, "CSC 216", "001", "MWF", 1330, 1445)
	c216b := course(t, "CSC 216", "002", "TH", 1330, 1445)
	c226 := course(t, "CSC 226", "001", "MW", 1400, 1500)
	gym, err := model.NewEvent("Gym", "S", 900, 1000, "")
	require.NoError(t, err)

	ok, msg := Validate([]model.Activity{c216, gym})
	assert.True(t, ok)
	assert.Equal(t, "[  OK]: Duplicate check.\n[  OK]: Conflict check.\n", msg)

	ok, msg = Validate([]model.Activity{c216, c216b, c226, gym})
	assert.False(t, ok)
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	assert.Equal(t, []string{
		"[FAIL]: Duplicate check.",
		"[FAIL]: Conflict check.",
		"- Duplicate: CSC 216-001 MWF 1:30 PM-2:45 PM | CSC 216-002 TH 1:30 PM-2:45 PM",
		"- Conflict: CSC 216-001 MWF 1:30 PM-2:45 PM | CSC 226-001 MW 2:00 PM-3:00 PM",
	}, lines)
}

func TestValidate_Empty(t *testing.T) {
	ok, _ := Validate(nil)
	assert.True(t, ok)
}
