package entity

// GameMode is chosen once per session.
type GameMode uint8

const (
	TwoPlayer GameMode = iota
	SinglePlayer
	Spectate
)

func (that GameMode) String() string {
	switch that {
	case TwoPlayer:
		return "two-player"
	case SinglePlayer:
		return "single-player"
	case Spectate:
		return "spectate"
	default:
		return "unknown"
	}
}

// HasAI reports whether at least one side of the session is driven by a bot.
func (that GameMode) HasAI() bool {
	return that == SinglePlayer || that == Spectate
}

// AIMode selects the bot policy. AIModeNone is used for two-player sessions.
type AIMode uint8

const (
	AIModeNone AIMode = iota
	AIModeRandom
	AIModeSmartRandom
)

func (that AIMode) String() string {
	switch that {
	case AIModeNone:
		return "none"
	case AIModeRandom:
		return "random"
	case AIModeSmartRandom:
		return "smart-random"
	default:
		return "unknown"
	}
}

// Winner is computed from a board on demand and never stored.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerCross
	WinnerNought
)

// Player maps a winner back to the side that won. The flag is false for WinnerNone.
func (that Winner) Player() (Player, bool) {
	switch that {
	case WinnerCross:
		return Cross, true
	case WinnerNought:
		return Nought, true
	default:
		return 0, false
	}
}

func (that Winner) String() string {
	switch that {
	case WinnerCross:
		return "Cross"
	case WinnerNought:
		return "Nought"
	default:
		return "None"
	}
}

func winnerOf(player Player) Winner {
	if player == Cross {
		return WinnerCross
	}
	return WinnerNought
}

// Outcome describes how a finished session ended.
type Outcome struct {
	Winner Winner
	Board  Board
	Tie    bool
}
