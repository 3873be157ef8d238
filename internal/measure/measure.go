// Package measure computes the terminal-printable width of a line of text.
//
// Widths are conservative estimates: ANSI SGR sequences (ESC ... m) and
// control characters take no space, every other character takes one column
// (or its East Asian cell width in ModeCells). Only sequences terminated by
// 'm' are recognized; any other escape sequence swallows the rest of the line.
package measure

import (
	"fmt"
	"math"
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
)

// Mode selects how a printable rune is counted.
type Mode string

const (
	// ModeRunes counts every printable rune as one column.
	ModeRunes Mode = "runes"
	// ModeCells counts every printable rune by its East Asian cell width.
	ModeCells Mode = "cells"
)

const escape = '\x1b'

type state int

const (
	stateNormal state = iota
	stateInEscape
)

// ParseMode validates a mode name. An empty name selects ModeRunes.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeRunes:
		return ModeRunes, nil
	case ModeCells:
		return ModeCells, nil
	default:
		return "", fmt.Errorf("invalid measure mode %q (expected %q or %q)", s, ModeRunes, ModeCells)
	}
}

// Width returns the display width of line in ModeRunes.
func Width(line string) uint16 {
	return ModeRunes.Width(line)
}

// Width returns the display width of line, saturating at math.MaxUint16.
func (m Mode) Width(line string) uint16 {
	st := stateNormal
	count := 0
	for _, r := range line {
		switch st {
		case stateNormal:
			if r == escape {
				st = stateInEscape
				continue
			}
			if unicode.IsControl(r) {
				continue
			}
			count += m.runeWidth(r)
		case stateInEscape:
			if r == 'm' {
				st = stateNormal
			}
		}
	}
	if count > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(count)
}

func (m Mode) runeWidth(r rune) int {
	if m == ModeCells {
		return runewidth.RuneWidth(r)
	}
	return 1
}
