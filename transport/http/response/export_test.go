package response

// SetProduction overrides the environment check for the duration of a test.
func SetProduction(production bool) func() {
	previous := isProduction
	isProduction = func() bool { return production }

	return func() { isProduction = previous }
}
