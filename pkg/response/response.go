package response

// Success is the envelope wrapping every report payload
type Success struct {
	Success bool        `json:"success"`
	Report  interface{} `json:"report"`
}

// Failure carries an error message only; internal details stay in the logs
type Failure struct {
	Error string `json:"error"`
}

// Report wraps a generated report into the success envelope
func Report(report interface{}) Success {
	return Success{Success: true, Report: report}
}

// Error wraps an error message into the failure envelope
func Error(err string) Failure {
	return Failure{Error: err}
}
