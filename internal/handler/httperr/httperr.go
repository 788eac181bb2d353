package httperr

// Response is the envelope returned by the error-handling middleware for
// errors that bubble up uncaught (panics, unhandled public errors). Handlers
// that map usecase errors themselves write their own bodies.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
