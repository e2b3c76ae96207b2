package pokemon

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire field numbers for the record. Numeric and boolean fields are
// varint-encoded, text fields are length-delimited.
const (
	fieldNumber         protowire.Number = 1
	fieldName           protowire.Number = 2
	fieldTypeOne        protowire.Number = 3
	fieldTypeTwo        protowire.Number = 4
	fieldTotal          protowire.Number = 5
	fieldHitPoints      protowire.Number = 6
	fieldAttack         protowire.Number = 7
	fieldDefense        protowire.Number = 8
	fieldSpecialAttack  protowire.Number = 9
	fieldSpecialDefense protowire.Number = 10
	fieldSpeed          protowire.Number = 11
	fieldGeneration     protowire.Number = 12
	fieldLegendary      protowire.Number = 13
)

// Unmarshal decodes a binary record. Absent fields keep their zero
// values, unknown fields and known fields carrying an unexpected wire
// type are skipped. Truncated or otherwise malformed input is an error.
func Unmarshal(data []byte) (*Record, error) {
	rec := &Record{}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("invalid field tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("field %d: invalid varint: %w", num, protowire.ParseError(n))
			}
			data = data[n:]

			switch num {
			case fieldNumber:
				rec.Number = v
			case fieldTotal:
				rec.Total = v
			case fieldHitPoints:
				rec.HitPoints = v
			case fieldAttack:
				rec.Attack = v
			case fieldDefense:
				rec.Defense = v
			case fieldSpecialAttack:
				rec.SpecialAttack = v
			case fieldSpecialDefense:
				rec.SpecialDefense = v
			case fieldSpeed:
				rec.Speed = v
			case fieldGeneration:
				rec.Generation = v
			case fieldLegendary:
				rec.Legendary = v != 0
			}

		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("field %d: invalid length-delimited value: %w", num, protowire.ParseError(n))
			}
			data = data[n:]

			switch num {
			case fieldName, fieldTypeOne, fieldTypeTwo:
				if !utf8.Valid(v) {
					return nil, fmt.Errorf("field %d: invalid UTF-8 in string value", num)
				}
			}

			switch num {
			case fieldName:
				rec.Name = string(v)
			case fieldTypeOne:
				rec.TypeOne = string(v)
			case fieldTypeTwo:
				rec.TypeTwo = string(v)
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("field %d: invalid value of wire type %d: %w", num, typ, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	return rec, nil
}

// Marshal encodes a record to its binary form. Zero-valued fields are
// omitted from the output.
func Marshal(rec *Record) []byte {
	var b []byte

	b = appendUint(b, fieldNumber, rec.Number)
	b = appendString(b, fieldName, rec.Name)
	b = appendString(b, fieldTypeOne, rec.TypeOne)
	b = appendString(b, fieldTypeTwo, rec.TypeTwo)
	b = appendUint(b, fieldTotal, rec.Total)
	b = appendUint(b, fieldHitPoints, rec.HitPoints)
	b = appendUint(b, fieldAttack, rec.Attack)
	b = appendUint(b, fieldDefense, rec.Defense)
	b = appendUint(b, fieldSpecialAttack, rec.SpecialAttack)
	b = appendUint(b, fieldSpecialDefense, rec.SpecialDefense)
	b = appendUint(b, fieldSpeed, rec.Speed)
	b = appendUint(b, fieldGeneration, rec.Generation)
	if rec.Legendary {
		b = protowire.AppendTag(b, fieldLegendary, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}

	return b
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
