package routing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"pokeproxy/internal/pokemon"
)

func testRecord() *pokemon.Record {
	return &pokemon.Record{
		Number:         6,
		Name:           "Charizard",
		TypeOne:        "Fire",
		TypeTwo:        "Flying",
		Total:          534,
		HitPoints:      78,
		Attack:         84,
		Defense:        78,
		SpecialAttack:  109,
		SpecialDefense: 85,
		Speed:          100,
		Generation:     1,
		Legendary:      false,
	}
}

func mustEngine(t *testing.T, rules ...Rule) *Engine {
	t.Helper()
	engine, err := NewEngine(&RuleSet{Rules: rules})
	if err != nil {
		t.Fatalf("NewEngine() unexpected error = %v", err)
	}
	return engine
}

func TestNewEngine_RejectsEmptyRuleSet(t *testing.T) {
	if _, err := NewEngine(nil); !errors.Is(err, ErrNoRules) {
		t.Errorf("NewEngine(nil) error = %v, want ErrNoRules", err)
	}
	if _, err := NewEngine(&RuleSet{}); !errors.Is(err, ErrNoRules) {
		t.Errorf("NewEngine(empty) error = %v, want ErrNoRules", err)
	}
}

func TestNewEngine_CompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr error
	}{
		{
			name:    "missing url",
			rule:    Rule{Reason: "r"},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "missing reason",
			rule:    Rule{URL: "http://a"},
			wantErr: ErrInvalidRule,
		},
		{
			// The pattern reads ">>" as ">" with an operand of "> 100",
			// so the failure surfaces as an operand error.
			name:    "doubled operator",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack >> 100"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "bare field",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack"}},
			wantErr: ErrInvalidPredicate,
		},
		{
			name:    "missing field",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"> 100"}},
			wantErr: ErrInvalidPredicate,
		},
		{
			name:    "single equals",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack = 100"}},
			wantErr: ErrInvalidPredicate,
		},
		{
			name:    "empty predicate",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{""}},
			wantErr: ErrInvalidPredicate,
		},
		{
			name:    "unknown field",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"power == 9001"}},
			wantErr: ErrUnknownField,
		},
		{
			name:    "greater on string",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"name > Mew"}},
			wantErr: ErrUnsupportedOperator,
		},
		{
			name:    "less on string",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"type_one < Fire"}},
			wantErr: ErrUnsupportedOperator,
		},
		{
			name:    "greater on bool",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"legendary > false"}},
			wantErr: ErrUnsupportedOperator,
		},
		{
			name:    "negative operand",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack == -5"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "fractional operand",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack == 12.5"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "textual operand on numeric field",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack > fast"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "hex operand",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack == 0x10"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "operand above uint64 range",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"attack == 18446744073709551616"}},
			wantErr: ErrInvalidOperand,
		},
		{
			name:    "unrecognized boolean operand",
			rule:    Rule{URL: "http://a", Reason: "r", Match: []string{"legendary == maybe"}},
			wantErr: ErrInvalidOperand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(&RuleSet{Rules: []Rule{tt.rule}})
			if err == nil {
				t.Fatal("NewEngine() expected error but got none")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewEngine() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewEngine_ErrorNamesRuleAndPredicate(t *testing.T) {
	rules := []Rule{
		{URL: "http://a", Reason: "ok", Match: []string{"attack > 1"}},
		{URL: "http://b", Reason: "broken", Match: []string{"attack >> 2"}},
	}

	_, err := NewEngine(&RuleSet{Rules: rules})
	if err == nil {
		t.Fatal("NewEngine() expected error but got none")
	}
	if !strings.Contains(err.Error(), "rule 1") {
		t.Errorf("NewEngine() error %q should name the failing rule index", err)
	}
	if !strings.Contains(err.Error(), `"attack >> 2"`) {
		t.Errorf("NewEngine() error %q should quote the failing predicate", err)
	}
}

func TestCompilePredicate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantField  string
		wantOp     Op
		wantKind   pokemon.FieldKind
		wantUint   uint64
		wantString string
		wantBool   bool
	}{
		{
			name:      "numeric comparison",
			raw:       "attack > 100",
			wantField: "attack",
			wantOp:    OpGreater,
			wantKind:  pokemon.KindUint,
			wantUint:  100,
		},
		{
			name:      "no whitespace",
			raw:       "speed<50",
			wantField: "speed",
			wantOp:    OpLess,
			wantKind:  pokemon.KindUint,
			wantUint:  50,
		},
		{
			name:      "generous whitespace",
			raw:       "   hit_points   !=   78   ",
			wantField: "hit_points",
			wantOp:    OpNotEqual,
			wantKind:  pokemon.KindUint,
			wantUint:  78,
		},
		{
			name:      "zero operand",
			raw:       "total == 0",
			wantField: "total",
			wantOp:    OpEqual,
			wantKind:  pokemon.KindUint,
			wantUint:  0,
		},
		{
			name:      "full uint64 operand",
			raw:       "attack < 18446744073709551615",
			wantField: "attack",
			wantOp:    OpLess,
			wantKind:  pokemon.KindUint,
			wantUint:  math.MaxUint64,
		},
		{
			name:       "string equality",
			raw:        "name != Mewtwo",
			wantField:  "name",
			wantOp:     OpNotEqual,
			wantKind:   pokemon.KindString,
			wantString: "Mewtwo",
		},
		{
			name:       "operand keeps interior whitespace",
			raw:        "type_one == Fire Blast",
			wantField:  "type_one",
			wantOp:     OpEqual,
			wantKind:   pokemon.KindString,
			wantString: "Fire Blast",
		},
		{
			name:      "boolean true uppercase",
			raw:       "legendary == TRUE",
			wantField: "legendary",
			wantOp:    OpEqual,
			wantKind:  pokemon.KindBool,
			wantBool:  true,
		},
		{
			name:      "boolean yes",
			raw:       "legendary == Yes",
			wantField: "legendary",
			wantOp:    OpEqual,
			wantKind:  pokemon.KindBool,
			wantBool:  true,
		},
		{
			name:      "boolean zero",
			raw:       "legendary != 0",
			wantField: "legendary",
			wantOp:    OpNotEqual,
			wantKind:  pokemon.KindBool,
			wantBool:  false,
		},
		{
			name:      "boolean no",
			raw:       "legendary == no",
			wantField: "legendary",
			wantOp:    OpEqual,
			wantKind:  pokemon.KindBool,
			wantBool:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := compilePredicate(tt.raw)
			if err != nil {
				t.Fatalf("compilePredicate(%q) unexpected error = %v", tt.raw, err)
			}
			if p.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", p.Field, tt.wantField)
			}
			if p.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", p.Op, tt.wantOp)
			}
			if p.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", p.Kind, tt.wantKind)
			}
			switch tt.wantKind {
			case pokemon.KindUint:
				if p.UintValue != tt.wantUint {
					t.Errorf("UintValue = %d, want %d", p.UintValue, tt.wantUint)
				}
			case pokemon.KindString:
				if p.StringValue != tt.wantString {
					t.Errorf("StringValue = %q, want %q", p.StringValue, tt.wantString)
				}
			case pokemon.KindBool:
				if p.BoolValue != tt.wantBool {
					t.Errorf("BoolValue = %t, want %t", p.BoolValue, tt.wantBool)
				}
			}
		})
	}
}

func TestEngine_Match_FirstMatchWins(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://first", Reason: "strong", Match: []string{"attack > 50"}},
		Rule{URL: "http://second", Reason: "also strong", Match: []string{"attack > 10"}},
	)

	matched := engine.Match(testRecord())
	if matched == nil {
		t.Fatal("Match() = nil, want first rule")
	}
	if matched.Rule.URL != "http://first" {
		t.Errorf("Match() selected %q, want the earlier rule", matched.Rule.URL)
	}
}

func TestEngine_Match_AndSemantics(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://slow-fire", Reason: "slow fire", Match: []string{"type_one == Fire", "speed < 50"}},
		Rule{URL: "http://fast-fire", Reason: "fast fire", Match: []string{"type_one == Fire", "speed > 50"}},
	)

	matched := engine.Match(testRecord())
	if matched == nil {
		t.Fatal("Match() = nil, want fast fire rule")
	}
	if matched.Rule.Reason != "fast fire" {
		t.Errorf("Match() reason = %q, want %q", matched.Rule.Reason, "fast fire")
	}
}

func TestEngine_Match_CatchAll(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://legends", Reason: "legendary", Match: []string{"legendary == true"}},
		Rule{URL: "http://archive", Reason: "everything else"},
	)

	matched := engine.Match(testRecord())
	if matched == nil {
		t.Fatal("Match() = nil, want catch-all rule")
	}
	if matched.Rule.URL != "http://archive" {
		t.Errorf("Match() selected %q, want the catch-all", matched.Rule.URL)
	}
}

func TestEngine_Match_NoMatch(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://legends", Reason: "legendary", Match: []string{"legendary == true"}},
	)

	if matched := engine.Match(testRecord()); matched != nil {
		t.Errorf("Match() = %v, want nil for unmatched record", matched.Rule)
	}
}

func TestEngine_Match_BooleanField(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://legends", Reason: "legendary", Match: []string{"legendary == yes"}},
		Rule{URL: "http://regulars", Reason: "regular", Match: []string{"legendary == 0"}},
	)

	mewtwo := testRecord()
	mewtwo.Name = "Mewtwo"
	mewtwo.Legendary = true

	if matched := engine.Match(mewtwo); matched == nil || matched.Rule.URL != "http://legends" {
		t.Errorf("Match(legendary) = %v, want legends rule", matched)
	}
	if matched := engine.Match(testRecord()); matched == nil || matched.Rule.URL != "http://regulars" {
		t.Errorf("Match(regular) = %v, want regulars rule", matched)
	}
}

func TestEngine_Match_StringComparisonIsCaseSensitive(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://fire", Reason: "fire", Match: []string{"type_one == fire"}},
	)

	if matched := engine.Match(testRecord()); matched != nil {
		t.Errorf("Match() = %v, want nil for case mismatch", matched.Rule)
	}
}

func TestEngine_Match_QuotedOperandIsLiteral(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://fire", Reason: "fire", Match: []string{`type_one == "Fire"`}},
	)

	if matched := engine.Match(testRecord()); matched != nil {
		t.Errorf("Match() = %v, quotes should be part of the operand", matched.Rule)
	}
}

func TestEngine_Match_FullUint64Range(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://titans", Reason: "beyond int64", Match: []string{"attack > 9223372036854775807"}},
	)

	rec := testRecord()
	rec.Attack = math.MaxUint64

	if matched := engine.Match(rec); matched == nil {
		t.Error("Match() = nil, comparison should be unsigned over the full range")
	}
	if matched := engine.Match(testRecord()); matched != nil {
		t.Errorf("Match() = %v, want nil for ordinary attack value", matched.Rule)
	}
}

func TestEngine_Match_ZeroValuedFields(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://empty", Reason: "no stats", Match: []string{"total == 0", "attack < 1"}},
	)

	rec := &pokemon.Record{Name: "MissingNo"}
	if matched := engine.Match(rec); matched == nil {
		t.Error("Match() = nil, zero values should compare like any other value")
	}
}

func TestEngine_Len(t *testing.T) {
	engine := mustEngine(t,
		Rule{URL: "http://a", Reason: "a"},
		Rule{URL: "http://b", Reason: "b"},
		Rule{URL: "http://c", Reason: "c"},
	)

	if engine.Len() != 3 {
		t.Errorf("Len() = %d, want 3", engine.Len())
	}
}

func BenchmarkEngineMatch(b *testing.B) {
	engine, err := NewEngine(&RuleSet{Rules: []Rule{
		{URL: "http://legends", Reason: "legendary", Match: []string{"legendary == true"}},
		{URL: "http://bulky", Reason: "bulky", Match: []string{"defense > 120", "hit_points > 90"}},
		{URL: "http://fast-fire", Reason: "fast fire", Match: []string{"type_one == Fire", "speed > 50"}},
		{URL: "http://archive", Reason: "everything else"},
	}})
	if err != nil {
		b.Fatalf("NewEngine() unexpected error = %v", err)
	}

	rec := testRecord()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if engine.Match(rec) == nil {
			b.Fatal("Match() = nil")
		}
	}
}
