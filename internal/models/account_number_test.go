package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountNumberSequence(t *testing.T) {
	seq := NewAccountNumberSequence()

	assert.Equal(t, "AC1001", seq.Next())
	assert.Equal(t, "AC1002", seq.Next())
	assert.Equal(t, int64(1002), seq.Last())
}

func TestAccountNumberSequence_Independent(t *testing.T) {
	a := NewAccountNumberSequence()
	b := NewAccountNumberSequenceFrom(5000)

	assert.Equal(t, "AC1001", a.Next())
	assert.Equal(t, "AC5001", b.Next())
	assert.Equal(t, "AC1002", a.Next())
}

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "AC42", FormatAccountNumber(42))
}
