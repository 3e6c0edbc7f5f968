package game

import (
	"fmt"

	"github.com/cicmen35/CL-Minesweeper/models"
)

type GameController struct {
	service *MinesweeperService
}

func NewGameController(service *MinesweeperService) *GameController {
	return &GameController{service: service}
}

func (c *GameController) StartGame(width, height int, difficulty models.Difficulty) error {
	return c.service.InitGame(width, height, difficulty)
}

func (c *GameController) TerminateGame() {
	fmt.Println("Terminating the game...")
}
