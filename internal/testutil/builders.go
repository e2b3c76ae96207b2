// Package testutil provides shared test fixtures: Pokemon record
// builders and canned records used across handler and app tests.
package testutil

import (
	"pokeproxy/internal/pokemon"
)

// RecordBuilder helps build test Pokemon records
type RecordBuilder struct {
	rec *pokemon.Record
}

// NewRecord creates a builder seeded with a plausible regular record.
// Override individual fields with the With methods.
func NewRecord() *RecordBuilder {
	return &RecordBuilder{
		rec: &pokemon.Record{
			Number:         25,
			Name:           "Pikachu",
			TypeOne:        "Electric",
			Total:          320,
			HitPoints:      35,
			Attack:         55,
			Defense:        40,
			SpecialAttack:  50,
			SpecialDefense: 50,
			Speed:          90,
			Generation:     1,
		},
	}
}

func (b *RecordBuilder) WithNumber(number uint64) *RecordBuilder {
	b.rec.Number = number
	return b
}

func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.rec.Name = name
	return b
}

func (b *RecordBuilder) WithTypes(typeOne, typeTwo string) *RecordBuilder {
	b.rec.TypeOne = typeOne
	b.rec.TypeTwo = typeTwo
	return b
}

func (b *RecordBuilder) WithTotal(total uint64) *RecordBuilder {
	b.rec.Total = total
	return b
}

func (b *RecordBuilder) WithHitPoints(hitPoints uint64) *RecordBuilder {
	b.rec.HitPoints = hitPoints
	return b
}

func (b *RecordBuilder) WithAttack(attack uint64) *RecordBuilder {
	b.rec.Attack = attack
	return b
}

func (b *RecordBuilder) WithDefense(defense uint64) *RecordBuilder {
	b.rec.Defense = defense
	return b
}

func (b *RecordBuilder) WithSpeed(speed uint64) *RecordBuilder {
	b.rec.Speed = speed
	return b
}

func (b *RecordBuilder) WithGeneration(generation uint64) *RecordBuilder {
	b.rec.Generation = generation
	return b
}

func (b *RecordBuilder) WithLegendary(legendary bool) *RecordBuilder {
	b.rec.Legendary = legendary
	return b
}

// Build returns the assembled record.
func (b *RecordBuilder) Build() *pokemon.Record {
	return b.rec
}

// Wire returns the assembled record in its binary wire form.
func (b *RecordBuilder) Wire() []byte {
	return pokemon.Marshal(b.rec)
}
