package naver

import (
	"fmt"
	"strings"
)

// UpstreamError reports a failed news search: transport errors, timeouts,
// non-2xx statuses and undecodable bodies all end up here.
type UpstreamError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	// Code is Naver's errorCode (e.g. SE01) when the body carried one.
	Code    string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, "status %d", e.StatusCode)
	}

	if e.Code != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s)", e.Code)
	}

	if e.Message != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Message)
	}

	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}

	if b.Len() == 0 {
		return "news search failed"
	}

	return b.String()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
