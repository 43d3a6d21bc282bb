package screens

// Zone is a rectangle of the display handed to one widget.
type Zone struct {
	X, Y, W, H int
}

// Contains reports whether the point x, y lies inside z.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Inset returns z shrunk by n pixels on every side.
func (z Zone) Inset(n int) Zone {
	return Zone{X: z.X + n, Y: z.Y + n, W: max(z.W-2*n, 0), H: max(z.H-2*n, 0)}
}
