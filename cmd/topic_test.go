package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTopics(t *testing.T) {
	var b strings.Builder
	require.NoError(t, listTopics(&b))

	got := b.String()
	assert.Contains(t, got, "track      Tracking a portfolio\n")
	assert.Contains(t, got, "config     Configuration\n")
	assert.NotContains(t, got, "readme")
}
