package svgpath

// This file implements the transformation from
// high level shapes to their path equivalent

// AddRect adds a closed rectangle with its top-left corner at (x, y).
// When both rx and ry are positive, the corners are rounded with
// elliptical arcs. Radii are clamped to half the width and height.
func (p *Path) AddRect(x, y, w, h, rx, ry float64) {
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx <= 0 || ry <= 0 {
		p.Start(Point{x, y})
		p.Line(Point{x + w, y})
		p.Line(Point{x + w, y + h})
		p.Line(Point{x, y + h})
		p.Stop(true)
		return
	}

	p.Start(Point{x + rx, y})
	p.Line(Point{x + w - rx, y})
	p.ArcTo(rx, ry, 0, false, true, Point{x + w, y + ry})
	p.Line(Point{x + w, y + h - ry})
	p.ArcTo(rx, ry, 0, false, true, Point{x + w - rx, y + h})
	p.Line(Point{x + rx, y + h})
	p.ArcTo(rx, ry, 0, false, true, Point{x, y + h - ry})
	p.Line(Point{x, y + ry})
	p.ArcTo(rx, ry, 0, false, true, Point{x + rx, y})
	p.Stop(true)
}

// AddEllipse adds a closed ellipse centered on (cx, cy),
// made of four elliptical arcs, one per quadrant.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.Start(Point{cx + rx, cy})
	p.ArcTo(rx, ry, 0, false, true, Point{cx, cy + ry})
	p.ArcTo(rx, ry, 0, false, true, Point{cx - rx, cy})
	p.ArcTo(rx, ry, 0, false, true, Point{cx, cy - ry})
	p.ArcTo(rx, ry, 0, false, true, Point{cx + rx, cy})
	p.Stop(true)
}

// AddPolyline adds a move-then-line-to chain through the
// interleaved coordinates `points`, closing it if `closed` is true.
// A trailing odd coordinate is ignored.
func (p *Path) AddPolyline(points []float64, closed bool) {
	if len(points) < 2 {
		return
	}
	p.Start(Point{points[0], points[1]})
	for i := 2; i+1 < len(points); i += 2 {
		p.Line(Point{points[i], points[i+1]})
	}
	p.Stop(closed)
}
