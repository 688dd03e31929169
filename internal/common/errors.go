package common

import "errors"

var (
	// repository specific errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// configuration errors
	ErrMissingSecret = errors.New("DB_PASSWORD environment variable is required")
)

// Kind classifies an Error.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindConnection
	KindCredential
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConnection:
		return "connection"
	case KindCredential:
		return "credential"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by every command. Its message is
// "<Stage> error: <cause>". Use errors.As to get at Kind and Stage and
// errors.Is to match the wrapped cause.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Stage + " error"
	}
	return e.Stage + " error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError reports a missing or malformed configuration value.
func ConfigError(err error) *Error {
	return &Error{Kind: KindConfig, Stage: StageConfig, Err: err}
}

// ConnectionError reports a failure to open a store connection.
func ConnectionError(err error) *Error {
	return &Error{Kind: KindConnection, Stage: StageConnection, Err: err}
}

// HashError reports an internal fault while hashing a secret.
func HashError(err error) *Error {
	return &Error{Kind: KindCredential, Stage: StageHash, Err: err}
}

// VerifyError reports a structurally invalid stored hash. A wrong password
// is not an error.
func VerifyError(err error) *Error {
	return &Error{Kind: KindCredential, Stage: StageVerify, Err: err}
}

// OpError reports a failed store statement at the given stage.
func OpError(stage string, err error) *Error {
	return &Error{Kind: KindStore, Stage: stage, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
