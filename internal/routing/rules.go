package routing

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rule is a single forwarding rule as written in the rules file.
//
// Rules are evaluated in the order they appear in the file and the first
// matching rule decides where a record is forwarded. A rule with an empty
// match list matches every record, which makes it a natural catch-all when
// placed last.
type Rule struct {
	URL    string   `json:"url"`    // Destination endpoint for matching records
	Reason string   `json:"reason"` // Label attached to forwarded requests and per-endpoint stats
	Match  []string `json:"match"`  // Predicates that must all hold, e.g. "attack > 100"
}

// RuleSet is the top-level rules file document.
type RuleSet struct {
	Rules []Rule `json:"rules"`
}

// LoadRuleSet reads and parses a rules file from disk.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	rs, err := ParseRuleSet(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	return rs, nil
}

// ParseRuleSet parses a rules document from raw JSON.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules document: %w", err)
	}
	return &rs, nil
}
