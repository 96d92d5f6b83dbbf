package frcmp

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp/fr"
	"github.com/pthm/frcmp/lib/encoding"
)

// Sentinel errors for component dispatch.
var (
	ErrNotFound         = errors.New("frcmp: resource not found")
	ErrDecryptFailed    = errors.New("frcmp: props decryption failed")
	ErrSignatureInvalid = errors.New("frcmp: props signature verification failed")
	ErrInvalidFormat    = errors.New("frcmp: invalid props format")
	ErrHydrationFailed  = errors.New("frcmp: hydration failed")
	ErrNotRegistered    = errors.New("frcmp: component not registered")
)

// IsNotFound checks if err is a not-found error. Unknown action names
// and hydration misses both report through this.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err means the props payload could not be
// read: tampered, truncated or encoded under another key. These are
// client errors, not bugs.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// WrapDecodeError maps encoding package errors onto frcmp sentinels so
// OnError handlers deal with a single error vocabulary. Other errors
// pass through unchanged.
func WrapDecodeError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, encoding.ErrInvalidFormat):
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	case errors.Is(err, encoding.ErrDecryptFailed):
		return fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return err
}

// ErrorComponent renders err as a small design-system error alert, for
// OnError handlers that want inline error markup instead of a bare
// HTTP error:
//
//	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
//	    frcmp.Render(w, r, frcmp.ErrorComponent(err))
//	}
//
// The message is HTML-escaped.
func ErrorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, werr := io.WriteString(w,
			`<div class="`+fr.Cx(fr.Alert, fr.AlertError, fr.AlertSm)+`" role="alert"><p>`+
				html.EscapeString(err.Error())+
				`</p></div>`)
		return werr
	})
}
