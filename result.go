package lexi

import (
	"fmt"
	"net/http"
)

// DefaultContentType is used for Text results and for Responses without a
// content type.
const DefaultContentType = "text/plain; charset=utf-8"

// Result is what a view returns: either a fully formed *Response or Text.
type Result interface {
	result()
}

// Text is a plain text result, sent with status 200 and DefaultContentType.
type Text string

func (Text) result() {}

// Response is a fully formed result.
type Response struct {
	// Status defaults to 200 when zero.
	Status int

	// ContentType defaults to DefaultContentType when empty.
	ContentType string

	Header http.Header
	Body   []byte
}

func (*Response) result() {}

// Respond is the function bound to the "respond" dependency.
type Respond func(status int, contentType, body string) *Response

// NewResponse builds a Response.
func NewResponse(status int, contentType, body string) *Response {
	return &Response{Status: status, ContentType: contentType, Body: []byte(body)}
}

// UnsupportedResultError is returned when a view returns a value that is
// neither a Result nor text.
type UnsupportedResultError struct{ Type string }

func (e UnsupportedResultError) Error() string {
	return "lexi: unsupported view result type " + e.Type
}

// toResult normalises a handler's return value.
func toResult(v any) (Result, error) {
	switch r := v.(type) {
	case *Response:
		if r == nil {
			return nil, UnsupportedResultError{Type: "nil *lexi.Response"}
		}
		return r, nil
	case Response:
		return &r, nil
	case Text:
		return r, nil
	case string:
		return Text(r), nil
	case []byte:
		return Text(r), nil
	case fmt.Stringer:
		return Text(r.String()), nil
	default:
		return nil, UnsupportedResultError{Type: fmt.Sprintf("%T", v)}
	}
}

func writeResult(w http.ResponseWriter, res Result) {
	switch r := res.(type) {
	case Text:
		w.Header().Set("Content-Type", DefaultContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r))
	case *Response:
		for k, vs := range r.Header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		ct := r.ContentType
		if ct == "" {
			ct = DefaultContentType
		}
		w.Header().Set("Content-Type", ct)
		status := r.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write(r.Body)
	}
}
