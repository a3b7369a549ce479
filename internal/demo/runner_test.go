package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	r := NewRunner(zaptest.NewLogger(t))
	var out bytes.Buffer
	r.out = &out

	return r, &out
}

func TestRunAll(t *testing.T) {
	r, out := newTestRunner(t)

	require.NoError(t, r.RunAll())

	// The mini board scenario renders the position.
	assert.Contains(t, out.String(), "♖")
	assert.Contains(t, out.String(), "a b c d e f g h")
}

func TestEachScenarioRunsClean(t *testing.T) {
	r, _ := newTestRunner(t)
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, r.RunNamed(name))
		})
	}
}

func TestRunNamedIsCaseInsensitive(t *testing.T) {
	r, _ := newTestRunner(t)
	require.NoError(t, r.RunNamed("Queen"))
}

func TestRunNamedUnknown(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.RunNamed("castling")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "castling")
}

func TestNamesInExecutionOrder(t *testing.T) {
	r, _ := newTestRunner(t)
	assert.Equal(t, []string{
		"creation",
		"movement",
		"polymorphism",
		"copying",
		"counters",
		"queen",
		"miniboard",
	}, r.Names())
}
