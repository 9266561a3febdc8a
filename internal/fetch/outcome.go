package fetch

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Motivos de ausência. Todos têm o mesmo efeito no fluxo (pular e seguir);
// a distinção serve para log e contagem.
var (
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("non-success status")
	ErrDecode    = errors.New("unparseable payload")
)

type Reason string

const (
	ReasonNone      Reason = ""
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
)

// StatusError carrega o status HTTP não-2xx.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string { return fmt.Sprintf("http status: %s", e.Status) }

// Is faz errors.Is(err, ErrStatus) valer para qualquer StatusError.
func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// Outcome é o resultado rotulado de uma consulta externa.
type Outcome struct {
	URL    string
	OK     bool
	Reason Reason
	Status int
	Err    error
}

// Absent é o inverso de OK.
func (o Outcome) Absent() bool { return !o.OK }

func (o Outcome) String() string {
	if o.OK {
		return "ok " + o.URL
	}
	return fmt.Sprintf("ausente(%s) %s: %v", o.Reason, o.URL, o.Err)
}

func absent(rawURL string, err error) Outcome {
	o := Outcome{URL: rawURL, Err: err, Reason: ReasonOf(err)}
	var se *StatusError
	if errors.As(err, &se) {
		o.Status = se.Code
	}
	return o
}

// ReasonOf classifica um erro de consulta.
func ReasonOf(err error) Reason {
	var se *StatusError
	switch {
	case err == nil:
		return ReasonNone
	case errors.As(err, &se), errors.Is(err, ErrStatus):
		return ReasonStatus
	case errors.Is(err, ErrDecode):
		return ReasonDecode
	default:
		return ReasonTransport
	}
}
