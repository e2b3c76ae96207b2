package routing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pokeproxy/internal/pokemon"
)

// Op identifies a comparison operator in a match predicate.
type Op string

const (
	OpEqual    Op = "=="
	OpNotEqual Op = "!="
	OpGreater  Op = ">"
	OpLess     Op = "<"
)

// predicatePattern splits a predicate into field, operator, and operand.
// The operand keeps interior whitespace but loses leading and trailing
// whitespace, so "type_one == Fire Blast" compares against "Fire Blast".
var predicatePattern = regexp.MustCompile(`^\s*(\w+)\s*(==|!=|>|<)\s*(.+?)\s*$`)

// CompiledPredicate is a match predicate pre-parsed for fast evaluation.
// The operand is converted to the field's native type at compile time so
// evaluation never parses strings.
type CompiledPredicate struct {
	Field string            // Record field name as written in the predicate
	Op    Op                // Comparison operator
	Kind  pokemon.FieldKind // Kind of the record field being tested

	UintValue   uint64 // Operand for numeric fields
	StringValue string // Operand for string fields
	BoolValue   bool   // Operand for the legendary flag
}

// CompiledRule pairs a rule with its pre-parsed predicates.
type CompiledRule struct {
	Rule       *Rule
	Predicates []*CompiledPredicate
}

// Engine evaluates compiled rules against decoded records.
//
// An Engine is immutable after construction and therefore safe for
// concurrent use without locking.
type Engine struct {
	rules []*CompiledRule
}

// NewEngine validates and compiles a rule set. Every rule must carry a
// destination URL and a reason, and every predicate must parse against a
// known record field with an operand of that field's type. Any violation
// fails compilation so misconfigured rules are caught at startup rather
// than during traffic.
func NewEngine(rs *RuleSet) (*Engine, error) {
	if rs == nil || len(rs.Rules) == 0 {
		return nil, ErrNoRules
	}

	compiled := make([]*CompiledRule, 0, len(rs.Rules))
	for i := range rs.Rules {
		rule, err := compileRule(&rs.Rules[i])
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, rule)
	}

	return &Engine{rules: compiled}, nil
}

// Len reports the number of compiled rules.
func (e *Engine) Len() int {
	return len(e.rules)
}

// Match returns the first rule whose predicates all hold for the record,
// or nil when no rule matches. Rules are evaluated in file order and
// predicates within a rule are combined with AND logic.
func (e *Engine) Match(rec *pokemon.Record) *CompiledRule {
	for _, rule := range e.rules {
		if rule.Matches(rec) {
			return rule
		}
	}
	return nil
}

// Matches reports whether every predicate of the rule holds for the
// record. A rule without predicates matches everything.
func (cr *CompiledRule) Matches(rec *pokemon.Record) bool {
	for _, p := range cr.Predicates {
		if !p.holds(rec) {
			return false
		}
	}
	return true
}

func compileRule(rule *Rule) (*CompiledRule, error) {
	if rule.URL == "" {
		return nil, fmt.Errorf("%w: missing url", ErrInvalidRule)
	}
	if rule.Reason == "" {
		return nil, fmt.Errorf("%w: missing reason", ErrInvalidRule)
	}

	compiled := &CompiledRule{
		Rule:       rule,
		Predicates: make([]*CompiledPredicate, 0, len(rule.Match)),
	}

	for _, raw := range rule.Match {
		p, err := compilePredicate(raw)
		if err != nil {
			return nil, fmt.Errorf("predicate %q: %w", raw, err)
		}
		compiled.Predicates = append(compiled.Predicates, p)
	}

	return compiled, nil
}

func compilePredicate(raw string) (*CompiledPredicate, error) {
	m := predicatePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, ErrInvalidPredicate
	}
	field, op, operand := m[1], Op(m[2]), m[3]

	kind, ok := pokemon.KindOf(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	p := &CompiledPredicate{Field: field, Op: op, Kind: kind}

	switch kind {
	case pokemon.KindUint:
		v, err := strconv.ParseUint(operand, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidOperand, operand)
		}
		p.UintValue = v

	case pokemon.KindString:
		if op == OpGreater || op == OpLess {
			return nil, fmt.Errorf("%w: %s cannot order string field %s", ErrUnsupportedOperator, op, field)
		}
		p.StringValue = operand

	case pokemon.KindBool:
		if op == OpGreater || op == OpLess {
			return nil, fmt.Errorf("%w: %s cannot order boolean field %s", ErrUnsupportedOperator, op, field)
		}
		v, err := parseBoolOperand(operand)
		if err != nil {
			return nil, err
		}
		p.BoolValue = v
	}

	return p, nil
}

func parseBoolOperand(operand string) (bool, error) {
	switch strings.ToLower(operand) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidOperand, operand)
}

func (p *CompiledPredicate) holds(rec *pokemon.Record) bool {
	switch p.Kind {
	case pokemon.KindUint:
		v, ok := rec.UintField(p.Field)
		if !ok {
			return false
		}
		switch p.Op {
		case OpEqual:
			return v == p.UintValue
		case OpNotEqual:
			return v != p.UintValue
		case OpGreater:
			return v > p.UintValue
		case OpLess:
			return v < p.UintValue
		}

	case pokemon.KindString:
		v, ok := rec.StringField(p.Field)
		if !ok {
			return false
		}
		if p.Op == OpNotEqual {
			return v != p.StringValue
		}
		return v == p.StringValue

	case pokemon.KindBool:
		v, ok := rec.BoolField(p.Field)
		if !ok {
			return false
		}
		if p.Op == OpNotEqual {
			return v != p.BoolValue
		}
		return v == p.BoolValue
	}

	return false
}
