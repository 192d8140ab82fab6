package lookup

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tcnksm/go-httpstat"
)

// Result holds either the response body or a StatusError, never both.
type Result struct {
	Body    string
	Err     *StatusError
	Elapsed time.Duration
	Stat    *httpstat.Result // set only when tracing
}

func (r Result) OK() bool {
	return r.Err == nil
}

type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return strconv.Itoa(e.Code) + " " + e.Reason
}

func newStatusError(resp *http.Response) *StatusError {
	// Status is "404 Not Found"; some servers and mocks send only the code
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))

	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	return &StatusError{Code: resp.StatusCode, Reason: reason}
}
