package pokemon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		field string
		kind  FieldKind
		ok    bool
	}{
		{"number", KindUint, true},
		{"name", KindString, true},
		{"type_one", KindString, true},
		{"type_two", KindString, true},
		{"total", KindUint, true},
		{"hit_points", KindUint, true},
		{"attack", KindUint, true},
		{"defense", KindUint, true},
		{"special_attack", KindUint, true},
		{"special_defense", KindUint, true},
		{"speed", KindUint, true},
		{"generation", KindUint, true},
		{"legendary", KindBool, true},
		{"hitPoints", 0, false},
		{"color", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			kind, ok := KindOf(tt.field)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "uint", KindUint.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "unknown", FieldKind(42).String())
}

func TestRecord_TypedAccessors(t *testing.T) {
	rec := &Record{
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

	t.Run("uint fields", func(t *testing.T) {
		uintFields := map[string]uint64{
			"number":          6,
			"total":           534,
			"hit_points":      78,
			"attack":          84,
			"defense":         78,
			"special_attack":  109,
			"special_defense": 85,
			"speed":           100,
			"generation":      1,
		}
		for name, want := range uintFields {
			v, ok := rec.UintField(name)
			require.True(t, ok, "UintField(%q)", name)
			assert.Equal(t, want, v, "UintField(%q)", name)
		}

		_, ok := rec.UintField("name")
		assert.False(t, ok)
		_, ok = rec.UintField("legendary")
		assert.False(t, ok)
	})

	t.Run("string fields", func(t *testing.T) {
		stringFields := map[string]string{
			"name":     "Charizard",
			"type_one": "Fire",
			"type_two": "Flying",
		}
		for name, want := range stringFields {
			v, ok := rec.StringField(name)
			require.True(t, ok, "StringField(%q)", name)
			assert.Equal(t, want, v, "StringField(%q)", name)
		}

		_, ok := rec.StringField("attack")
		assert.False(t, ok)
	})

	t.Run("bool fields", func(t *testing.T) {
		v, ok := rec.BoolField("legendary")
		require.True(t, ok)
		assert.False(t, v)

		_, ok = rec.BoolField("name")
		assert.False(t, ok)
	})
}

func TestRecord_JSONEncoding(t *testing.T) {
	rec := &Record{
		Number:    7,
		Name:      "Squirtle",
		TypeOne:   "Water",
		Total:     314,
		HitPoints: 44,
		Attack:    48,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"number": 7,
		"name": "Squirtle",
		"type_one": "Water",
		"type_two": "",
		"total": 314,
		"hit_points": 44,
		"attack": 48,
		"defense": 0,
		"special_attack": 0,
		"special_defense": 0,
		"speed": 0,
		"generation": 0,
		"legendary": false
	}`, string(data))
}

func TestRecord_JSONNumericRendering(t *testing.T) {
	// Numeric fields must serialize as JSON numbers, not strings
	rec := &Record{Name: "Snorlax", HitPoints: 160}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"hit_points":160`)
	assert.NotContains(t, string(data), `"hit_points":"160"`)
}
