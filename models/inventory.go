package models

// Canonical room and bed inventory for the house. This is the single source of
// truth: the database seed and the pricing engine are both built from it, so
// the two can never disagree about which beds exist.
//
// Do not retune ids or bed types casually — submission rows reference bed ids,
// and the pricing allocation shifts whenever the bed mix changes.

func DefaultRooms() []Room {
	return []Room{
		{ID: 1, Name: "Bedroom 1", Description: "Master bedroom with king bed and bunks"},
		{ID: 2, Name: "Bedroom 2", Description: "Queen bed with bunks"},
		{ID: 3, Name: "Bedroom 3", Description: "Queen bed with bunks"},
		{ID: 4, Name: "Bedroom 4", Description: "Queen and twin beds"},
		{ID: 5, Name: "Bedroom 5", Description: "Queen bed"},
		{ID: 6, Name: "Bedroom 6", Description: "Queen bed"},
		{ID: 7, Name: "Bedroom 7", Description: "Queen bed with bunks"},
		{ID: 8, Name: "Bedroom 8", Description: "Queen bed with bunks"},
		{ID: 9, Name: "Bedroom 9", Description: "Queen and twin beds"},
	}
}

func DefaultBeds() []Bed {
	return []Bed{
		// Bedroom 1
		{ID: "r1-king", RoomID: 1, BedType: BedTypeKing, Capacity: 2, IsAvailable: true},
		{ID: "r1-bunk-a", RoomID: 1, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},
		{ID: "r1-bunk-b", RoomID: 1, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},

		// Bedroom 2
		{ID: "r2-queen", RoomID: 2, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r2-bunk-a", RoomID: 2, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},
		{ID: "r2-bunk-b", RoomID: 2, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},

		// Bedroom 3
		{ID: "r3-queen", RoomID: 3, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r3-bunk-a", RoomID: 3, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},
		{ID: "r3-bunk-b", RoomID: 3, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},

		// Bedroom 4
		{ID: "r4-queen", RoomID: 4, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r4-twin", RoomID: 4, BedType: BedTypeTwin, Capacity: 1, IsAvailable: true},

		// Bedroom 5
		{ID: "r5-queen", RoomID: 5, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},

		// Bedroom 6
		{ID: "r6-queen", RoomID: 6, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},

		// Bedroom 7
		{ID: "r7-queen", RoomID: 7, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r7-bunk-a", RoomID: 7, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},
		{ID: "r7-bunk-b", RoomID: 7, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},

		// Bedroom 8
		{ID: "r8-queen", RoomID: 8, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r8-bunk-a", RoomID: 8, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},
		{ID: "r8-bunk-b", RoomID: 8, BedType: BedTypeBunk, Capacity: 1, IsAvailable: true},

		// Bedroom 9
		{ID: "r9-queen", RoomID: 9, BedType: BedTypeQueen, Capacity: 2, IsAvailable: true},
		{ID: "r9-twin", RoomID: 9, BedType: BedTypeTwin, Capacity: 1, IsAvailable: true},
	}
}
