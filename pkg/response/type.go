package response

// DefaultErrorMessage is returned for unexpected internal failures.
const DefaultErrorMessage = "internal server error"

// ErrResp is the standard JSON error body.
type ErrResp struct {
	Message string `json:"message"`
}
