// Package routing decides where decoded Pokemon records are forwarded.
// It implements an ordered, first-match rule engine: rules are read from a
// JSON file, compiled once at startup, and evaluated against each incoming
// record in file order.
//
// # Overview
//
// A rules file is a single JSON document:
//
//	{
//	  "rules": [
//	    {
//	      "url": "http://heavy-hitters.internal:9000/ingest",
//	      "reason": "strong attacker",
//	      "match": ["attack > 100", "legendary == false"]
//	    },
//	    {
//	      "url": "http://archive.internal:9000/ingest",
//	      "reason": "everything else",
//	      "match": []
//	    }
//	  ]
//	}
//
// Every predicate has the form "field op literal" where op is one of
// ==, !=, > and <. Predicates within a rule are combined with AND logic;
// the first rule whose predicates all hold wins. An empty match list
// matches every record. When no rule matches, Match returns nil and the
// caller decides what to do with the record.
//
// # Compilation
//
// NewEngine validates the whole rule set up front so configuration
// mistakes surface at startup instead of during traffic:
//
//   - every rule must carry a url and a reason
//   - predicates must parse as "field op literal"
//   - the field must exist on the record
//   - > and < are only defined for numeric fields
//   - numeric operands must be base-10 unsigned integers
//   - boolean operands must be one of true/false/1/0/yes/no (case-insensitive)
//
// Operands are converted to the field's native type during compilation,
// so evaluating a predicate is a single typed comparison. Numeric
// comparisons use uint64 throughout and are exact over the full range.
//
// # Usage
//
//	ruleSet, err := routing.LoadRuleSet("/etc/pokeproxy/rules.json")
//	if err != nil {
//	    // startup abort
//	}
//
//	engine, err := routing.NewEngine(ruleSet)
//	if err != nil {
//	    // startup abort
//	}
//
//	if rule := engine.Match(record); rule != nil {
//	    forward(rule.Rule.URL, rule.Rule.Reason, record)
//	}
//
// The Engine is immutable after construction and safe for concurrent use.
package routing
