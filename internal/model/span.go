package model

// SpanKind tags a region of source text.
type SpanKind int

const (
	// SpanCode is text outside of any string literal or comment.
	SpanCode SpanKind = iota
	// SpanString is a string or character literal, delimiters included.
	SpanString
	// SpanComment is a line or block comment, delimiters included.
	SpanComment
)

func (k SpanKind) String() string {
	switch k {
	case SpanCode:
		return "code"
	case SpanString:
		return "string"
	case SpanComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) of a source text.
// The spans produced for one text are disjoint and cover it in order.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of src covered by the span.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// Edit replaces the half-open byte range [Start, End) of the original text
// with New.
type Edit struct {
	Start int
	End   int
	Old   string
	New   string
}
