// Package pokemon defines the Pokemon record entity, its binary wire
// codec and the field registry used by the routing rule engine.
package pokemon

// Record is a single decoded Pokemon record. JSON tags are the
// canonical snake_case field names used in rule predicates and in the
// payload forwarded downstream.
type Record struct {
	Number         uint64 `json:"number"`
	Name           string `json:"name"`
	TypeOne        string `json:"type_one"`
	TypeTwo        string `json:"type_two"`
	Total          uint64 `json:"total"`
	HitPoints      uint64 `json:"hit_points"`
	Attack         uint64 `json:"attack"`
	Defense        uint64 `json:"defense"`
	SpecialAttack  uint64 `json:"special_attack"`
	SpecialDefense uint64 `json:"special_defense"`
	Speed          uint64 `json:"speed"`
	Generation     uint64 `json:"generation"`
	Legendary      bool   `json:"legendary"`
}

// FieldKind identifies the comparable type of a record field.
type FieldKind int

const (
	// KindUint marks numeric fields compared as uint64
	KindUint FieldKind = iota
	// KindString marks text fields
	KindString
	// KindBool marks boolean fields
	KindBool
)

// String returns the string representation of a field kind
func (k FieldKind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

var fieldKinds = map[string]FieldKind{
	"number":          KindUint,
	"name":            KindString,
	"type_one":        KindString,
	"type_two":        KindString,
	"total":           KindUint,
	"hit_points":      KindUint,
	"attack":          KindUint,
	"defense":         KindUint,
	"special_attack":  KindUint,
	"special_defense": KindUint,
	"speed":           KindUint,
	"generation":      KindUint,
	"legendary":       KindBool,
}

// KindOf reports the kind of the named field and whether the field exists.
// Names are the snake_case JSON names.
func KindOf(name string) (FieldKind, bool) {
	k, ok := fieldKinds[name]
	return k, ok
}

// UintField returns the value of the named numeric field.
// The second return is false when the field is not a numeric field.
func (r *Record) UintField(name string) (uint64, bool) {
	switch name {
	case "number":
		return r.Number, true
	case "total":
		return r.Total, true
	case "hit_points":
		return r.HitPoints, true
	case "attack":
		return r.Attack, true
	case "defense":
		return r.Defense, true
	case "special_attack":
		return r.SpecialAttack, true
	case "special_defense":
		return r.SpecialDefense, true
	case "speed":
		return r.Speed, true
	case "generation":
		return r.Generation, true
	}
	return 0, false
}

// StringField returns the value of the named text field.
// The second return is false when the field is not a text field.
func (r *Record) StringField(name string) (string, bool) {
	switch name {
	case "name":
		return r.Name, true
	case "type_one":
		return r.TypeOne, true
	case "type_two":
		return r.TypeTwo, true
	}
	return "", false
}

// BoolField returns the value of the named boolean field.
// The second return is false when the field is not a boolean field.
func (r *Record) BoolField(name string) (bool, bool) {
	if name == "legendary" {
		return r.Legendary, true
	}
	return false, false
}
