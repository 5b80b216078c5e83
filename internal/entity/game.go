package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game holds one match between the human (X) and the computer (O):
// the board, whose turn it is, and the outcome once finished.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`
	Turn   string `json:"player_turn,omitempty"`
}

// NewGame - returns a fresh ongoing game with X to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Reset - restores the initial state in place, keeping the game ID.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Winner = ""
	that.Status = StatusOngoing
	that.Turn = PlayerX
}
