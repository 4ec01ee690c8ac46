package engine

import "errors"

// Sentinel errors surfaced by engine operations. All are comparable with
// errors.Is; none carry engine state or the offending value.
var (
	// ErrInvalidCharacter is returned when a stop word, document term, or
	// query term contains an ASCII control byte (0-31).
	ErrInvalidCharacter = errors.New("engine: term contains a control character")

	// ErrMalformedMinus is returned when a query token is a bare "-", a
	// "--" prefix, or has a space immediately after the leading "-".
	ErrMalformedMinus = errors.New("engine: malformed minus term in query")

	// ErrDuplicateID is returned by AddDocument when the id is already registered.
	ErrDuplicateID = errors.New("engine: document id already exists")

	// ErrNegativeID is returned by AddDocument when id < 0.
	ErrNegativeID = errors.New("engine: document id must be non-negative")

	// ErrUnknownDocumentID is returned by MatchDocument and
	// MatchDocumentParallel given an unregistered id.
	ErrUnknownDocumentID = errors.New("engine: unknown document id")
)
