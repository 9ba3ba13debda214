package compute

import (
	"fmt"

	"github.com/daviszhen/compute/pkg/common"
)

type OpErrorKind int

const (
	// ErrTypeMismatch: the element types cannot meet under this
	// operation.
	ErrTypeMismatch OpErrorKind = iota + 1
	// ErrShapeMismatch: row counts differ where they must align.
	ErrShapeMismatch
	// ErrInvalidOperandKind: the operand kinds make no sense for the
	// operation family.
	ErrInvalidOperandKind
	// ErrUnsupportedCombination: the pairing is recognized and
	// deliberately rejected.
	ErrUnsupportedCombination
)

var opErrorKindToStr = map[OpErrorKind]string{
	ErrTypeMismatch:           "type mismatch",
	ErrShapeMismatch:          "shape mismatch",
	ErrInvalidOperandKind:     "invalid operand kind",
	ErrUnsupportedCombination: "unsupported combination",
}

func (kind OpErrorKind) String() string {
	if s, has := opErrorKindToStr[kind]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", kind))
}

// OpError is the one error type dispatch returns. Kind carries the
// category, Msg the full story.
type OpError struct {
	Kind OpErrorKind
	Msg  string
}

func (err *OpError) Error() string {
	return err.Msg
}

func typeMismatchErr(op OpType, l, r common.LType) *OpError {
	return &OpError{
		Kind: ErrTypeMismatch,
		Msg:  fmt.Sprintf("operation %s not supported between %s and %s", op, l, r),
	}
}

func emptyOperandErr() *OpError {
	return &OpError{
		Kind: ErrTypeMismatch,
		Msg:  "empty column provided to binary operation",
	}
}

func shapeMismatchErr(op OpType, lRows, rRows int) *OpError {
	return &OpError{
		Kind: ErrShapeMismatch,
		Msg:  fmt.Sprintf("operation %s over mismatched row counts %d and %d", op, lRows, rRows),
	}
}

func invalidOperandErr(op OpType, l, r ResultKind) *OpError {
	return &OpError{
		Kind: ErrInvalidOperandKind,
		Msg:  fmt.Sprintf("operation %s not valid for operand kinds %s and %s", op, l, r),
	}
}

func twoValuesErr(op OpType) *OpError {
	return &OpError{
		Kind: ErrInvalidOperandKind,
		Msg:  fmt.Sprintf("operation %s not accepted between two scalar values", op),
	}
}

func boolMembershipErr() *OpError {
	return &OpError{
		Kind: ErrUnsupportedCombination,
		Msg:  "membership not implemented for bool element types",
	}
}
