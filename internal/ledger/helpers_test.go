package ledger

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seqIDs returns an IDFunc yielding p1, p2, ...
func seqIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, context ...string) {
	t.Helper()
	msg := fmt.Sprintf("want %s, got %s", want, got.String())
	if len(context) > 0 {
		msg = context[0] + ": " + msg
	}
	assert.True(t, got.Equal(dec(want)), msg)
}
