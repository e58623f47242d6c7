package repositories

import (
	"github.com/KirkDiggler/pathtracker/internal/errors"
)

type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrRecord RepositoryError = "record error"
)

// NewRecordNotFoundError reports a key with no stored record. It carries
// CodeNotFound so callers can use errors.IsNotFound.
func NewRecordNotFoundError(key string) error {
	return errors.WrapWithCode(ErrRecord, errors.CodeNotFound, "no record for key "+key).
		WithMeta("key", key)
}

// NewCorruptRecordError reports a stored record that could not be decoded
func NewCorruptRecordError(key string, err error) error {
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, "corrupt record for key "+key).
		WithMeta("key", key)
}
