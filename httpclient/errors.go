package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/kbukum/avatax/errors"
)

var errEmptyBody = stderrors.New("empty response body")

// classifyResponse inspects a received body. A top-level "error" field is
// a service error whatever the status; a body that is not JSON is a parse
// failure. Anything else, including a non-2xx JSON body without "error",
// is a success and nil is returned.
func classifyResponse(statusCode int, body []byte) *errors.AvalaraError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		if statusCode >= 200 && statusCode < 300 {
			return nil
		}
		return errors.FromParse(statusCode, body, errEmptyBody)
	}

	if trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return errors.FromParse(statusCode, body, stderrors.New("response body is not valid JSON"))
		}
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return errors.FromParse(statusCode, body, err)
	}
	raw, ok := envelope["error"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var info errors.ErrorInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		// "error" is not an error object; its text becomes the message.
		var msg string
		if json.Unmarshal(raw, &msg) != nil {
			msg = string(bytes.TrimSpace(raw))
		}
		info = errors.ErrorInfo{Message: msg}
	}
	return errors.FromService(info, statusCode)
}

// classifyFailure translates an error that prevented any response from
// being read. The caller's own deadline counts as a timeout; the caller's
// cancellation and every other fault are transport failures.
func classifyFailure(ctx context.Context, deadline time.Duration, err error) *errors.AvalaraError {
	switch {
	case stderrors.Is(err, ErrDeadlineExceeded):
		return errors.FromTimeout(deadline, err)
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		d := deadline
		if dl, ok := ctx.Deadline(); ok && d <= 0 {
			d = time.Until(dl).Round(time.Millisecond)
		}
		return errors.FromTimeout(d, err)
	default:
		return errors.FromTransport(err)
	}
}
