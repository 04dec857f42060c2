package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions: green snake, red pickups on a black field
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black field
	RgbSnakeBody  = tcell.NewRGBColor(0, 255, 0)     // Green body
	RgbSnakeHead  = tcell.NewRGBColor(0, 0, 255)     // Blue eye on the head
	RgbPickup     = tcell.NewRGBColor(255, 0, 0)     // Red pickups
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White text
	RgbStatusBg   = tcell.NewRGBColor(40, 40, 40)    // Dim status strip
	RgbGameOver   = tcell.NewRGBColor(255, 255, 255) // White banner text
	RgbGameOverBg = tcell.NewRGBColor(180, 0, 0)     // Red banner
)
