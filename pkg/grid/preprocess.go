package grid

// Preprocess derives the play-ready fields of a freshly parsed Board: static deadlock cells,
// the room partition and the Zobrist table. It mutates and returns b so callers can chain it
// directly onto parse.Decode's result.
func Preprocess(b *Board, zobristSeed int64) *Board {
	b.Dead = ComputeDeadCells(b)
	b.RoomOf, b.RoomGoalCount = ComputeRooms(b)
	b.Zobrist = NewZobristTable(zobristSeed, b.NumCells())
	return b
}
