package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineCommand_NoLetter(t *testing.T) {
	resetFlags(t)
	refineChange = "kürzer und formeller"

	err := runRefine(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no letter draft")
}
