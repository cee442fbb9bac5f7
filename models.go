package ettndcsdk

type (
	Response struct {
		Status     string                 `json:"status"`
		Error      string                 `json:"error"`
		Data       map[string]interface{} `json:"data"`
		Attributes map[string]interface{} `json:"attributes"`
	}

	ResponseStatus struct {
		Status string `json:"status"`
	}

	ResponseError struct {
		StatusCode         int
		Description        interface{}
		ErrorMessage       string
		ClientErrorMessage string
		ResponseHeader     map[string]interface{}
	}
)

var ErrorCodeWithMessage = map[int]string{
	400: "Invalid request",
	401: "Authorization is invalid or expired",
	403: "Access denied",
	404: "Not found",
	409: "Already exists",
	422: "Supplier rejected the request",
	500: "Internal server error, contact support",
}

// Mode phrases are forwarded to Telegram without the function-name prefix.
var Mode = []string{"[🔴 Down]", "[🟢 Up]"}
