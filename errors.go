package articledb

import (
	"errors"
	"fmt"

	"github.com/orsinium-labs/enum"
)

// ErrClosed is returned, wrapped in a storage-kind *Error, for any operation
// on a handle after Close.
var ErrClosed = errors.New("database is closed")

// errorKind represents the two failure classes of this package: filesystem
// problems and statements rejected by the storage engine.
type errorKind = enum.Member[string]

var (
	errorKindIO      = errorKind{Value: "io"}
	errorKindStorage = errorKind{Value: "storage"}
)

// Error is the error type returned by every operation in this package.
type Error struct {
	kind errorKind
	op   string
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.op, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the failure class, either "io" or "storage".
func (e *Error) Kind() string {
	return e.kind.Value
}

func ioErrorf(op string, format string, args ...any) error {
	return &Error{kind: errorKindIO, op: op, err: fmt.Errorf(format, args...)}
}

func storageErrorf(op string, format string, args ...any) error {
	return &Error{kind: errorKindStorage, op: op, err: fmt.Errorf(format, args...)}
}

// IsIOError reports whether err comes from the filesystem side: a missing
// directory, an unreadable file, a bad archive.
func IsIOError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == errorKindIO
}

// IsStorageError reports whether err comes from the storage engine rejecting
// a statement, or from use of a closed handle.
func IsStorageError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == errorKindStorage
}
