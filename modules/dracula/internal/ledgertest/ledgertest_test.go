package ledgertest

import (
	"testing"

	"github.com/soldracula/dracula/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentProgramIDs(t *testing.T) {
	p := NewParties(t)
	instructions := p.Payment(t).Instructions()
	require.Len(t, instructions, 2)

	assert.Equal(t, "system", instructions[0].Program)
	assert.Equal(t, solana.SystemProgramID.String(), instructions[0].ProgramID)
	assert.Equal(t, "spl-memo", instructions[1].Program)
	assert.Equal(t, "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr", instructions[1].ProgramID)
}
