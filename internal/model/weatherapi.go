package model

// APIResponse is the decode envelope for a WeatherAPI body. Location and
// Current are nil when the body does not carry them; Error is set when the
// service answered with an error object instead of a result.
type APIResponse struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
	Error    *APIError `json:"error,omitempty"`
}

// APIError is the error object WeatherAPI returns, e.g.
// {"error":{"code":1006,"message":"No matching location found."}}.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Result converts a complete envelope into a WeatherResult.
// It reports false when location or current data is missing.
func (r *APIResponse) Result() (*WeatherResult, bool) {
	if r.Location == nil || r.Current == nil {
		return nil, false
	}
	return &WeatherResult{
		Location: *r.Location,
		Current:  *r.Current,
	}, true
}
