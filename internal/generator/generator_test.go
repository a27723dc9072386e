package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestVars_FillsMissingContext(t *testing.T) {
	g := New("test-key", "gpt-4o-mini", 100, 0.7, zap.NewNop())

	vars := g.vars(Request{Tool: "surveys"})

	assert.Equal(t, "surveys", vars["tool"])
	assert.Equal(t, "your project", vars["framework"])
	assert.Equal(t, "your project", vars["stage"])
	assert.Equal(t, "your project", vars["topic"])
}

func TestVars_KeepsProvidedContext(t *testing.T) {
	g := New("test-key", "gpt-4o-mini", 100, 0.7, zap.NewNop())

	vars := g.vars(Request{
		Tool:      "personas",
		Framework: "lean-ux",
		Stage:     "define",
		Topic:     "checkout",
	})

	assert.Equal(t, "personas", vars["tool"])
	assert.Equal(t, "lean-ux", vars["framework"])
	assert.Equal(t, "define", vars["stage"])
	assert.Equal(t, "checkout", vars["topic"])
}
