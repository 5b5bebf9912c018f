package model

// ResultKind tells callers whether the tool ran at all
type ResultKind int

const (
	// ResultSuccess means the tool ran; Text holds what should be displayed
	ResultSuccess ResultKind = iota

	// ResultToolInvocationFailed means the tool could not be run
	ResultToolInvocationFailed
)

// String returns a short label for the kind
func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultToolInvocationFailed:
		return "tool-invocation-failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of reading or stripping metadata. Text is always
// ready for display; Err is set only for ResultToolInvocationFailed.
type Result struct {
	Kind ResultKind
	Text string
	Err  error
}

// Success builds a successful result with display text
func Success(text string) Result {
	return Result{Kind: ResultSuccess, Text: text}
}

// Failed builds a failed result. The display text is prefix followed by the
// error description.
func Failed(prefix string, err error) Result {
	text := prefix
	if err != nil {
		text += err.Error()
	}
	return Result{Kind: ResultToolInvocationFailed, Text: text, Err: err}
}

// OK reports whether the tool ran
func (r Result) OK() bool {
	return r.Kind == ResultSuccess
}
