package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

func TestParseDescription(t *testing.T) {
	elements, err := parseDescription("appsrc name=src format=time ! h264parse ! avdec_h264 ! autovideosink")
	require.NoError(t, err)
	require.Len(t, elements, 4)
	require.Equal(t, "appsrc", elements[0].Factory)
	require.Equal(t, "src", elements[0].Name())
	require.Equal(t, "time", elements[0].Properties["format"])
	require.Equal(t, "h264parse", elements[1].Factory)
	require.Equal(t, "", elements[1].Name())
}

func TestParseDescriptionEmpty(t *testing.T) {
	_, err := parseDescription("")
	require.ErrorAs(t, err, &types.ErrInvalidDescription{})
}

func TestParseDescriptionEmptySegment(t *testing.T) {
	_, err := parseDescription("appsrc name=src ! ! fakesink")
	require.ErrorAs(t, err, &types.ErrInvalidDescription{})
}

func TestParseDescriptionMalformedProperty(t *testing.T) {
	_, err := parseDescription("appsrc name")
	require.ErrorAs(t, err, &types.ErrInvalidDescription{})
}
