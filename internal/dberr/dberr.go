// Package dberr is the single error-mapping boundary between the store
// adapter and the rest of the service. Every store failure crossing it is
// classified into one stable, caller-facing kind.
package dberr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind string

const (
	// StoreUnavailable covers adapter-level failures (connection, query).
	StoreUnavailable Kind = "store_unavailable"
	// AggregationFailed marks a fan-out summary where a sub-read failed.
	AggregationFailed Kind = "aggregation_failed"
	// JoinIntegrity marks a listing row whose customer cannot be resolved.
	JoinIntegrity Kind = "join_integrity"
	// DataIntegrity marks a violated uniqueness invariant.
	DataIntegrity Kind = "data_integrity"
	// NotFound is a valid absent result, not a failure.
	NotFound Kind = "not_found"
	// InvalidInput rejects caller input before any query is built.
	InvalidInput Kind = "invalid_input"
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds an error of an explicit kind.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Wrap classifies a raw store error. Errors already classified keep their
// kind; gorm's missing-record sentinel becomes NotFound; anything else is
// StoreUnavailable. A nil error stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return E(NotFound, op, err)
	}
	return E(StoreUnavailable, op, err)
}

// KindOf reports the kind of a classified error, or "" for others.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func IsNotFound(err error) bool { return KindOf(err) == NotFound }
