package render

import "errors"

// ErrNoData is returned by chart builders when there is nothing to plot.
// Callers fall back to Placeholder.
var ErrNoData = errors.New("no data to plot")
