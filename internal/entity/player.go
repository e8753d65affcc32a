package entity

// Player is the side that is acting on a turn. Cross always moves first.
type Player uint8

const (
	Cross Player = iota
	Nought
)

func (that Player) Opponent() Player {
	if that == Cross {
		return Nought
	}
	return Cross
}

// Mark returns the cell content left behind by a placement of this player.
func (that Player) Mark() Mark {
	if that == Cross {
		return MarkCross
	}
	return MarkNought
}

func (that Player) String() string {
	if that == Cross {
		return "Cross"
	}
	return "Nought"
}
