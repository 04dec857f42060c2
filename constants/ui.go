package constants

// UI Layout Constants
const (
	// StatusBarHeight is the number of terminal rows reserved above the field
	StatusBarHeight = 1

	// GameOverText is the terminal banner shown once the game ends
	GameOverText = " GAME OVER! "

	// QuitHintText is appended to the status line
	QuitHintText = "q/Esc to quit"
)

// Glyphs
const (
	SnakeBodyChar = '█'
	SnakeHeadChar = '◉'
	PickupChar    = '●'
)

// Logging Constants
const (
	// LogDir is the directory receiving debug logs
	LogDir = "logs"

	// LogFileName is the active log file name
	LogFileName = "snake.log"

	// MaxLogSize triggers rotation of the active log file (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
