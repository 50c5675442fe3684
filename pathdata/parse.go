// seehuhn.de/go/svgrender - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pathdata

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"
)

// ErrSyntax is returned by [Parse] for malformed path data.
var ErrSyntax = errors.New("invalid path data")

// Parse reads path data in the syntax of the SVG "d" attribute.
//
// On a syntax error, Parse returns the path up to the last complete
// command, together with an error wrapping [ErrSyntax].  SVG renderers
// are expected to draw this partial path.
func Parse(d string) (*Path, error) {
	pp := &pathParser{buf: []byte(d), p: New()}
	err := pp.run()
	return pp.p, err
}

type pathParser struct {
	buf []byte
	pos int
	p   *Path

	cur, start vec.Vec2

	// ctrl is the last control point of the previous command, if that
	// command was a cubic ('c') or quadratic ('q') curve
	ctrl     vec.Vec2
	ctrlKind byte
}

func (pp *pathParser) run() error {
	pp.skipSpace()
	var last byte
	for pp.pos < len(pp.buf) {
		cmd := pp.buf[pp.pos]
		if isPathCommand(cmd) {
			pp.pos++
			pp.skipSpace()
		} else if last != 0 && last != 'z' && last != 'Z' && pp.atNumber() {
			cmd = last
		} else {
			return pp.errorf("unexpected %q", cmd)
		}
		if last == 0 && cmd != 'M' && cmd != 'm' {
			return pp.errorf("path data must start with a moveto command")
		}

		if err := pp.command(cmd); err != nil {
			return err
		}

		// subsequent coordinate pairs after a moveto are lineto commands
		switch cmd {
		case 'M':
			last = 'L'
		case 'm':
			last = 'l'
		default:
			last = cmd
		}
	}
	return nil
}

func (pp *pathParser) command(cmd byte) error {
	rel := cmd >= 'a'
	var base vec.Vec2
	if rel {
		base = pp.cur
	}
	point := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: base.X + x, Y: base.Y + y}
	}

	var ctrl vec.Vec2
	var ctrlKind byte

	switch cmd | 0x20 {
	case 'm':
		a, err := pp.numbers(2)
		if err != nil {
			return err
		}
		q := point(a[0], a[1])
		pp.p.MoveTo(q.X, q.Y)
		pp.cur, pp.start = q, q
	case 'z':
		pp.p.Close()
		pp.cur = pp.start
	case 'l':
		a, err := pp.numbers(2)
		if err != nil {
			return err
		}
		q := point(a[0], a[1])
		pp.p.LineTo(q.X, q.Y)
		pp.cur = q
	case 'h':
		a, err := pp.numbers(1)
		if err != nil {
			return err
		}
		x := a[0]
		if rel {
			x += pp.cur.X
		}
		pp.p.LineTo(x, pp.cur.Y)
		pp.cur.X = x
	case 'v':
		a, err := pp.numbers(1)
		if err != nil {
			return err
		}
		y := a[0]
		if rel {
			y += pp.cur.Y
		}
		pp.p.LineTo(pp.cur.X, y)
		pp.cur.Y = y
	case 'c', 's':
		var c1 vec.Vec2
		var a []float64
		var err error
		if cmd|0x20 == 'c' {
			a, err = pp.numbers(6)
			if err != nil {
				return err
			}
			c1 = point(a[0], a[1])
			a = a[2:]
		} else {
			a, err = pp.numbers(4)
			if err != nil {
				return err
			}
			c1 = pp.reflect('c')
		}
		c2 := point(a[0], a[1])
		q := point(a[2], a[3])
		pp.p.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
		pp.cur = q
		ctrl, ctrlKind = c2, 'c'
	case 'q', 't':
		var c vec.Vec2
		var a []float64
		var err error
		if cmd|0x20 == 'q' {
			a, err = pp.numbers(4)
			if err != nil {
				return err
			}
			c = point(a[0], a[1])
			a = a[2:]
		} else {
			a, err = pp.numbers(2)
			if err != nil {
				return err
			}
			c = pp.reflect('q')
		}
		q := point(a[0], a[1])
		pp.p.QuadTo(c.X, c.Y, q.X, q.Y)
		pp.cur = q
		ctrl, ctrlKind = c, 'q'
	case 'a':
		radii, err := pp.numbers(3)
		if err != nil {
			return err
		}
		large, err := pp.flag()
		if err != nil {
			return err
		}
		sweep, err := pp.flag()
		if err != nil {
			return err
		}
		a, err := pp.numbers(2)
		if err != nil {
			return err
		}
		q := point(a[0], a[1])
		pp.p.ArcTo(radii[0], radii[1], radii[2], large, sweep, q.X, q.Y)
		pp.cur = q
	}

	pp.ctrl, pp.ctrlKind = ctrl, ctrlKind
	return nil
}

// reflect returns the reflection of the previous control point about the
// current point, if the previous command was a curve of the given kind.
// Otherwise the current point is returned.
func (pp *pathParser) reflect(kind byte) vec.Vec2 {
	if pp.ctrlKind != kind {
		return pp.cur
	}
	return pp.cur.Mul(2).Sub(pp.ctrl)
}

func (pp *pathParser) numbers(n int) ([]float64, error) {
	res := make([]float64, n)
	for i := range res {
		f, k := strconv.ParseFloat(pp.buf[pp.pos:])
		if k == 0 {
			if pp.pos >= len(pp.buf) {
				return nil, pp.errorf("unexpected end of path data")
			}
			return nil, pp.errorf("expected number, found %q", pp.buf[pp.pos])
		}
		pp.pos += k
		pp.skipSeparator()
		res[i] = f
	}
	return res, nil
}

func (pp *pathParser) flag() (bool, error) {
	if pp.pos < len(pp.buf) {
		switch pp.buf[pp.pos] {
		case '0', '1':
			v := pp.buf[pp.pos] == '1'
			pp.pos++
			pp.skipSeparator()
			return v, nil
		}
	}
	return false, pp.errorf("expected arc flag")
}

func (pp *pathParser) atNumber() bool {
	if pp.pos >= len(pp.buf) {
		return false
	}
	c := pp.buf[pp.pos]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func (pp *pathParser) skipSpace() {
	for pp.pos < len(pp.buf) && parse.IsWhitespace(pp.buf[pp.pos]) {
		pp.pos++
	}
}

func (pp *pathParser) skipSeparator() {
	pp.skipSpace()
	if pp.pos < len(pp.buf) && pp.buf[pp.pos] == ',' {
		pp.pos++
		pp.skipSpace()
	}
}

func (pp *pathParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s: %w", pp.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func isPathCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'z', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a':
		return true
	}
	return false
}
