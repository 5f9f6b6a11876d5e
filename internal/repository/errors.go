package repository

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrStorage matches every StorageError. Operations that fail with it did
// not commit anything and are not retried.
var ErrStorage = errors.New("storage failure")

// StorageError is an engine-level failure: I/O, permissions, corruption,
// full disk or a locked file.
type StorageError struct {
	Op   string
	Code sqlite3.ErrNo
	Err  error
}

func (e *StorageError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: %s (%s): %v", ErrStorage, e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	se := &StorageError{Op: op, Err: err}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		se.Code = sqliteErr.Code
	}
	return se
}
