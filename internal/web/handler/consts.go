package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = ""

	// ErrNilACSFatalLogMsg is used if app or cfg or store var pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or store is nil"
)
