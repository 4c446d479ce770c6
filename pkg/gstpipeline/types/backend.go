package types

type Backend string

const (
	BackendUndefined = ""
	BackendGst       = "gst"
	BackendBuiltin   = "builtin"
)
