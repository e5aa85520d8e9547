package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
)

func TestStableExcludesBeta(t *testing.T) {
	assert.True(t, Stable.Matches("Microsoft.Graph.Users"))
	assert.True(t, Stable.Matches("Microsoft.Graph"))
	assert.False(t, Stable.Matches("Microsoft.Graph.Beta.Users"))
	assert.False(t, Stable.Matches("Microsoft.Graph.Beta"))
}

func TestBetaMatches(t *testing.T) {
	assert.True(t, Beta.Matches("Microsoft.Graph.Beta"))
	assert.True(t, Beta.Matches("Microsoft.Graph.Beta.Users"))
	assert.False(t, Beta.Matches("Microsoft.Graph.Users"))
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	assert.True(t, Stable.Matches("microsoft.graph.users"))
	assert.True(t, Beta.Matches("MICROSOFT.GRAPH.BETA"))
}

func TestPatternsDeduplicated(t *testing.T) {
	sel := New([]Family{Stable, Stable, Beta}, gallery.ScopeAllUsers)
	assert.Equal(t, []string{"Microsoft.Graph*", "Microsoft.Graph.Beta*"}, sel.Patterns())
}

func TestSelectionMatches(t *testing.T) {
	sel := New([]Family{Stable}, gallery.ScopeCurrentUser)
	assert.True(t, sel.Matches("Microsoft.Graph.Authentication"))
	assert.False(t, sel.Matches("Microsoft.Graph.Beta.Users"))
	assert.False(t, sel.Matches("Az.Accounts"))
}

func TestSiblingPair(t *testing.T) {
	both := New([]Family{Stable, Beta}, gallery.ScopeAllUsers)
	stable, preview, ok := both.SiblingPair()
	assert.True(t, ok)
	assert.Equal(t, "Microsoft.Graph", stable.Name)
	assert.Equal(t, "Microsoft.Graph.Beta", preview.Name)

	_, _, ok = New([]Family{Stable}, gallery.ScopeAllUsers).SiblingPair()
	assert.False(t, ok)
}

func TestNewCopiesFamilies(t *testing.T) {
	families := []Family{Stable}
	sel := New(families, gallery.ScopeAllUsers)
	families[0] = Beta
	assert.Equal(t, "Microsoft.Graph", sel.Families[0].Name)
}
