package logs

// Span identifies one evaluation request in log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey
