/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package contrast computes WCAG 2 contrast ratios between CSS colors.
package contrast

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// WCAG 2 minimum ratios.
const (
	AALarge = 3.0
	AA      = 4.5
	AAA     = 7.0
)

// ErrTranslucentBackground is returned when the background is not opaque,
// so the effective color depends on what lies beneath it.
var ErrTranslucentBackground = errors.New("background is not opaque")

// Ratio returns the contrast ratio of fg on bg, between 1 and 21.
// A translucent foreground is composited over the background first.
func Ratio(fg, bg string) (float64, error) {
	f, fa, err := parse(fg)
	if err != nil {
		return 0, err
	}
	b, ba, err := parse(bg)
	if err != nil {
		return 0, err
	}
	if ba < 1 {
		return 0, ErrTranslucentBackground
	}
	if fa < 1 {
		f = b.BlendRgb(f, fa)
	}

	l1, l2 := Luminance(f), Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

// Luminance returns the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Level names the highest WCAG level a ratio meets for normal text.
func Level(ratio float64) string {
	switch {
	case ratio >= AAA:
		return "AAA"
	case ratio >= AA:
		return "AA"
	case ratio >= AALarge:
		return "AA large"
	default:
		return "fail"
	}
}

func parse(s string) (colorful.Color, float64, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, c.A, nil
}
