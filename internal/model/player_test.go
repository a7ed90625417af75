package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	assert.Equal(t, PositionQB, ParsePosition("qb"))
	assert.Equal(t, PositionRB, ParsePosition(" RB "))
	assert.Equal(t, PositionDST, ParsePosition("d/st"))
	assert.Equal(t, PositionUnknown, ParsePosition(""))
	assert.Equal(t, PositionUnknown, ParsePosition("   "))
	// Exotic slots pass through uppercased instead of collapsing.
	assert.Equal(t, Position("IDP"), ParsePosition("idp"))
}
