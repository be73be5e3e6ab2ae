package pim

import (
	"fmt"

	"github.com/pkg/errors"
)

// PathError is raised, wrapped and as a panic, by the writing path
// operations (SetIn, UpdateIn, MergeIn) when an intermediate segment of the
// path names a non-collection value and the path has not been exhausted.
// GetIn and DeleteIn do not raise it: they report a miss or do nothing.
type PathError struct {
	Path    []interface{}
	AtIndex int
	Value   interface{}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("pim: path %v: segment %d is not a collection (value %v, type %T)",
		e.Path, e.AtIndex, e.Value, e.Value)
}

func newPathError(path []interface{}, atIndex int, value interface{}) error {
	return errors.WithStack(&PathError{Path: path, AtIndex: atIndex, Value: value})
}

// InvalidKeyError is reserved for user-supplied Hasher implementations that
// cannot compute a hash for a given key. The default protocol never raises
// it.
type InvalidKeyError struct {
	Key interface{}
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("pim: cannot hash key %v (%T)", e.Key, e.Key)
}

// MisuseError is raised by WithMutations when its callback seals the
// transient with AsImmutable before returning. A write through a handle
// already sealed by AsImmutable does not raise it: that handle behaves as
// an ordinary persistent Map.
type MisuseError struct {
	Op     string
	Reason string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("pim: misuse: %s: %s", e.Op, e.Reason)
}

func newMisuseError(op, reason string) error {
	return errors.WithStack(&MisuseError{Op: op, Reason: reason})
}
