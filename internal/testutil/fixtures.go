package testutil

import (
	"pokeproxy/internal/pokemon"
)

// Canned records with real stat lines.

// Charizard returns a regular dual-type record.
func Charizard() *pokemon.Record {
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
	}
}

// Mewtwo returns a legendary record.
func Mewtwo() *pokemon.Record {
	return &pokemon.Record{
		Number:         150,
		Name:           "Mewtwo",
		TypeOne:        "Psychic",
		Total:          680,
		HitPoints:      106,
		Attack:         110,
		Defense:        90,
		SpecialAttack:  154,
		SpecialDefense: 90,
		Speed:          130,
		Generation:     1,
		Legendary:      true,
	}
}

// Dragonite returns a strong regular record, useful for threshold rules.
func Dragonite() *pokemon.Record {
	return &pokemon.Record{
		Number:         149,
		Name:           "Dragonite",
		TypeOne:        "Dragon",
		TypeTwo:        "Flying",
		Total:          600,
		HitPoints:      91,
		Attack:         134,
		Defense:        95,
		SpecialAttack:  100,
		SpecialDefense: 100,
		Speed:          80,
		Generation:     1,
	}
}
