package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return format(e.Message, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError reports a missing input path.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return format("run log not found: "+e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(path string, err error) *NotFoundError {
	return &NotFoundError{Path: path, Err: err}
}

// ParseError reports a malformed run log or a schema mismatch between logs.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return format(e.Message, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParse(msg string) *ParseError {
	return &ParseError{Message: msg}
}

func NewParseWrap(msg string, err error) *ParseError {
	return &ParseError{Message: msg, Err: err}
}

// InputError reports a precondition violation by the caller, e.g. an empty run list.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func NewInput(msg string) *InputError {
	return &InputError{Message: msg}
}

// WriteError reports a failure while emitting a report. Bytes already written
// at Path must be treated as invalid.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return format("write report "+e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func NewWrite(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

func format(msg string, err error) string {
	if err != nil {
		return msg + ": " + err.Error()
	}
	return msg
}
