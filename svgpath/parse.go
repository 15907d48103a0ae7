package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
	errNoMoveTo       = errors.New("path data does not start with a moveto")
)

// pathCursor is used while compiling path data
type pathCursor struct {
	path             Path
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current subpath
	cntlPtX, cntlPtY float64 // last control point, for S and T
	lastKey          byte
	inPath           bool
	points           []float64
}

// Parse compiles the SVG path data `d` into an absolute path, where
// H, V, S, T and relative commands are resolved and elliptical arcs
// are replaced by cubic Bézier curves.
// When `d` is malformed, the path compiled up to the error
// is returned along with the error, following the SVG error handling rules.
func Parse(d string) (Path, error) {
	var c pathCursor
	err := c.compilePath([]byte(d))
	return c.path, err
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t' || b == '\f'
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && isSeparator(data[i]) {
		i++
	}
	return i
}

// argCount returns the number of numeric arguments of a command,
// or -1 for unknown commands.
func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// readArgs reads `n` arguments for `cmd` into c.points,
// returning the number of bytes consumed.
func (c *pathCursor) readArgs(data []byte, cmd byte, n int) (int, error) {
	c.points = c.points[:0]
	i := 0
	for k := 0; k < n; k++ {
		i += skipCommaWhitespace(data[i:])
		if (cmd == 'A' || cmd == 'a') && (k == 3 || k == 4) {
			// flags may be written without separators, like "a1 1 0 01 5 5"
			if i >= len(data) || (data[i] != '0' && data[i] != '1') {
				return i, fmt.Errorf("%w: invalid arc flag for %q", errParamMismatch, cmd)
			}
			c.points = append(c.points, float64(data[i]-'0'))
			i++
			continue
		}
		f, l := strconv.ParseFloat(data[i:])
		if l == 0 {
			return i, fmt.Errorf("%w: expected %d arguments for %q, got %d", errParamMismatch, n, cmd, k)
		}
		c.points = append(c.points, f)
		i += l
	}
	return i, nil
}

func (c *pathCursor) compilePath(data []byte) error {
	var cmd byte
	for i := 0; ; {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			return nil
		}
		if isLetter(data[i]) {
			cmd = data[i]
			i++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return fmt.Errorf("%w: unexpected %q", errParamMismatch, data[i])
		}
		n := argCount(cmd)
		if n == -1 {
			return fmt.Errorf("%w: %q", errCommandUnknown, cmd)
		}
		if len(c.path) == 0 && cmd != 'M' && cmd != 'm' {
			return errNoMoveTo
		}
		l, err := c.readArgs(data[i:], cmd, n)
		if err != nil {
			return err
		}
		i += l
		c.addSeg(cmd, c.points)
		// subsequent pairs after a moveto are implicit lineto commands
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (c *pathCursor) reflectControlQuad() {
	switch c.lastKey {
	case 'q', 'Q', 'T', 't':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

func (c *pathCursor) reflectControlCube() {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

// ensureStart opens a new subpath at the current point when a
// drawing command follows a closepath.
func (c *pathCursor) ensureStart() {
	if !c.inPath {
		c.path.Start(Point{c.placeX, c.placeY})
		c.inPath = true
	}
}

// addSeg decodes one command, with absolute or relative
// arguments, and appends the corresponding operations.
func (c *pathCursor) addSeg(cmd byte, points []float64) {
	rel := cmd >= 'a'
	offset := func(i int) {
		if rel {
			points[i] += c.placeX
			points[i+1] += c.placeY
		}
	}
	switch cmd {
	case 'M', 'm':
		offset(0)
		c.path.Start(Point{points[0], points[1]})
		c.placeX, c.placeY = points[0], points[1]
		c.startX, c.startY = c.placeX, c.placeY
		c.inPath = true
	case 'Z', 'z':
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
		c.inPath = false
	case 'L', 'l':
		c.ensureStart()
		offset(0)
		c.path.Line(Point{points[0], points[1]})
		c.placeX, c.placeY = points[0], points[1]
	case 'H', 'h':
		c.ensureStart()
		if rel {
			points[0] += c.placeX
		}
		c.path.Line(Point{points[0], c.placeY})
		c.placeX = points[0]
	case 'V', 'v':
		c.ensureStart()
		if rel {
			points[0] += c.placeY
		}
		c.path.Line(Point{c.placeX, points[0]})
		c.placeY = points[0]
	case 'Q', 'q':
		c.ensureStart()
		offset(0)
		offset(2)
		c.path.QuadBezier(Point{points[0], points[1]}, Point{points[2], points[3]})
		c.cntlPtX, c.cntlPtY = points[0], points[1]
		c.placeX, c.placeY = points[2], points[3]
	case 'T', 't':
		c.ensureStart()
		offset(0)
		c.reflectControlQuad()
		c.path.QuadBezier(Point{c.cntlPtX, c.cntlPtY}, Point{points[0], points[1]})
		c.placeX, c.placeY = points[0], points[1]
	case 'C', 'c':
		c.ensureStart()
		offset(0)
		offset(2)
		offset(4)
		c.path.CubeBezier(Point{points[0], points[1]}, Point{points[2], points[3]}, Point{points[4], points[5]})
		c.cntlPtX, c.cntlPtY = points[2], points[3]
		c.placeX, c.placeY = points[4], points[5]
	case 'S', 's':
		c.ensureStart()
		offset(0)
		offset(2)
		c.reflectControlCube()
		c.path.CubeBezier(Point{c.cntlPtX, c.cntlPtY}, Point{points[0], points[1]}, Point{points[2], points[3]})
		c.cntlPtX, c.cntlPtY = points[0], points[1]
		c.placeX, c.placeY = points[2], points[3]
	case 'A', 'a':
		c.ensureStart()
		offset(5)
		end := Point{points[5], points[6]}
		c.path.ArcTo(points[0], points[1], points[2], points[3] != 0, points[4] != 0, end)
		c.placeX, c.placeY = end.X, end.Y
	}
	c.lastKey = cmd
}
