package recommend

// Log field names.
const (
	logFieldComponent = "component"
	logFieldWines     = "wines"
	logFieldSakes     = "sakes"
	logFieldReturned  = "returned"
	logFieldCandidate = "candidates"
	logFieldPanic     = "panic"

	componentName = "recommend"
)
