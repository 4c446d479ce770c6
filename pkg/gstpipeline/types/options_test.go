package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsConfig(t *testing.T) {
	require.Equal(t, "src", Options{}.Config().SourceName)
	require.Equal(t, "injector", Options{OptionSourceName("injector")}.Config().SourceName)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "end_of_stream", Outcome{Type: OutcomeTypeEndOfStream}.String())
	require.Equal(t, "error: boom", Outcome{
		Type: OutcomeTypeError,
		Err:  ErrPipeline{Message: "boom"},
	}.String())
}
