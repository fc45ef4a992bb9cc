package hex

import "math"

// Line returns the Distance(p,q)+1 points from p to q inclusive. Every
// step is interpolated independently from the endpoints rather than
// accumulated, so rounding error never drifts: the first point is exactly
// p and the last is exactly q. Each axis rounds to the nearest integer
// with ties away from zero, which keeps results reproducible bit-for-bit.
func (p Point) Line(q Point) []Point {
	length := p.Distance(q)
	if length == 0 {
		// the slope is undefined at zero length
		return []Point{p}
	}

	sx := float64(q.Hx-p.Hx) / float64(length)
	sy := float64(q.Hy-p.Hy) / float64(length)

	line := make([]Point, 0, length+1)
	for i := 0; i <= length; i++ {
		line = append(line, Point{
			Hx: int(math.Round(float64(p.Hx) + float64(i)*sx)),
			Hy: int(math.Round(float64(p.Hy) + float64(i)*sy)),
		})
	}
	return line
}
