package display

import "github.com/khardy/RWind/internal/diag"

// MaxErrorTextLen bounds resolved error text. A misbehaving server
// cannot drive unbounded allocation through the error path.
const MaxErrorTextLen = 500

// ErrorTextResolver is the server handle's own text-resolution
// capability. *Session implements it.
type ErrorTextResolver interface {
	LookupErrorText(code int) string
}

// Interceptor is the single synchronous choke point for all
// server-reported faults. It translates codes to bounded text, reports
// them to its diagnostic sink, and always returns the continue status:
// it never unwinds into the foreign dispatcher above it.
type Interceptor struct {
	sink *diag.Sink
}

// NewInterceptor binds an interceptor to its diagnostic sink.
func NewInterceptor(sink *diag.Sink) *Interceptor {
	return &Interceptor{sink: sink}
}

// Translate resolves code to text via the handle's own capability,
// truncated to MaxErrorTextLen bytes, and emits it to the sink. It
// completes for any input and never panics, even when the resolver
// misbehaves.
func (i *Interceptor) Translate(res ErrorTextResolver, code int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = (&ProtocolError{Code: code}).Error()
			i.sink.Errorf("error text resolution panicked for code %d: %v", code, r)
		}
	}()

	text = res.LookupErrorText(code)
	if len(text) > MaxErrorTextLen {
		text = text[:MaxErrorTextLen]
	}
	i.sink.Errorf("%v", &ProtocolError{Code: code, Text: text})
	return text
}

// Handle is the ErrorHandler installed into the session. It translates
// and logs the report, then returns HandlerContinue irrespective of the
// code: protocol errors are logged only, never propagated.
func (i *Interceptor) Handle(report *ErrorReport) HandlerStatus {
	report.Message = i.Translate(report.Session, report.Code)
	return HandlerContinue
}

// Handler returns Handle as an explicit stored callable for
// Session.InstallErrorHandler.
func (i *Interceptor) Handler() ErrorHandler {
	return i.Handle
}
