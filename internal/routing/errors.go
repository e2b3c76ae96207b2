package routing

import "errors"

var (
	// ErrNoRules is returned when the rules document contains no rules
	ErrNoRules = errors.New("rules file contains no rules")

	// ErrInvalidRule is returned when a rule is missing a required field
	ErrInvalidRule = errors.New("invalid routing rule")

	// ErrInvalidPredicate is returned when a match predicate cannot be parsed
	ErrInvalidPredicate = errors.New("invalid match predicate")

	// ErrUnknownField is returned when a predicate references a field that
	// does not exist on the record
	ErrUnknownField = errors.New("unknown record field")

	// ErrUnsupportedOperator is returned when an operator cannot be applied
	// to the referenced field's type
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrInvalidOperand is returned when a predicate operand cannot be
	// converted to the referenced field's type
	ErrInvalidOperand = errors.New("invalid operand")
)
