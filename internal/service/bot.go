package service

import (
	"math/rand"
	"time"

	"github.com/solvekit/tictactoe-solo/internal/apperror"
	"github.com/solvekit/tictactoe-solo/internal/entity"
)

type BotService interface {
	ChooseCell(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - builds the computer opponent. Pass a seeded source for
// deterministic games; nil falls back to a time-seeded one.
func NewBotService(rnd *rand.Rand) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // not used for security
	}

	return &botService{rnd: rnd}
}

// ChooseCell - picks uniformly at random among the empty cells. No
// look-ahead, no blocking heuristic; the opponent is intentionally naive.
func (that *botService) ChooseCell(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}
