package errors

// Error kinds shared by the services. Handlers match them with Is to pick
// a response status; the wrapped message keeps the offending ids.
var (
	NotFound    = Error("not found")
	Validation  = Error("invalid input")
	Unavailable = Error("temporarily unavailable")
)

func NotFoundf(format string, args ...any) error {
	return Mark(NotFound, Errorf(format, args...))
}

func Validationf(format string, args ...any) error {
	return Mark(Validation, Errorf(format, args...))
}
