package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cicmen35/CL-Minesweeper/game"
	"github.com/cicmen35/CL-Minesweeper/models"
)

func newLogger() zerolog.Logger {
	// The TUI owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
		}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger = logger.Level(lvl)
	}
	return logger
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// promptDimension keeps asking until it reads an integer of at least 2.
// Returns false if the player typed 'q' instead.
func promptDimension(name string) (int, bool) {
	var input string

	for {
		fmt.Printf("Enter the %s of the grid (at least 2) or 'q' to quit: ", name)
		if _, err := fmt.Scan(&input); err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		if strings.ToLower(input) == "q" {
			return 0, false
		}

		value, err := strconv.Atoi(input)
		if err == nil && value >= 2 {
			return value, true
		}

		fmt.Printf("The grid must be at least 2x2. Please enter a valid %s.\n", name)
	}
}

func promptDifficulty() (models.Difficulty, bool) {
	var input string

	for {
		fmt.Print("Choose your difficulty Easy:1, Medium:2, Hard:3 or 'q' to quit: ")
		if _, err := fmt.Scan(&input); err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		if strings.ToLower(input) == "q" {
			return 0, false
		}

		switch input {
		case "1":
			return models.Easy, true
		case "2":
			return models.Medium, true
		case "3":
			return models.Hard, true
		}

		fmt.Println("Invalid input. Please enter a level between 1 and 3 or 'q' to quit.")
	}
}

func main() {
	_ = godotenv.Load()
	logger := newLogger()

	width, ok := promptDimension("width")
	if !ok {
		fmt.Println("Quitting...")
		return
	}
	height, ok := promptDimension("height")
	if !ok {
		fmt.Println("Quitting...")
		return
	}
	difficulty, ok := promptDifficulty()
	if !ok {
		fmt.Println("Quitting...")
		return
	}

	service := game.NewMinesweeperService(logger)
	controller := game.NewGameController(service)

	if err := controller.StartGame(width, height, difficulty); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
