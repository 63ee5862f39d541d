// Package draw renders game frames to a terminal using half-block
// characters for doubled vertical resolution.
package draw

// Point represents a 2D coordinate on the canvas.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
