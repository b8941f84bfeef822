package render

import "image"

// inset shrinks rect by padding on all sides, never past empty.
func inset(rect image.Rectangle, padding int) image.Rectangle {
	if padding <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+padding, rect.Min.Y+padding, rect.Max.X-padding, rect.Max.Y-padding)
	if out.Dx() <= 0 || out.Dy() <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	return out
}

// splitTop cuts height pixels off the top of rect, clamped to rect.
func splitTop(rect image.Rectangle, height int) (top, rest image.Rectangle) {
	height = clamp(height, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+height)
	rest = image.Rect(rect.Min.X, rect.Min.Y+height, rect.Max.X, rect.Max.Y)
	return top, rest
}

// splitLeft cuts width pixels off the left of rect, clamped to rect.
func splitLeft(rect image.Rectangle, width int) (left, rest image.Rectangle) {
	width = clamp(width, 0, rect.Dx())
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y)
	rest = image.Rect(rect.Min.X+width, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, rest
}

// centerSquare returns the largest square centered in rect.
func centerSquare(rect image.Rectangle) image.Rectangle {
	size := min(rect.Dx(), rect.Dy())
	if size <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
