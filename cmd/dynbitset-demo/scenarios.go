package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/dynbitset"
	"github.com/hupe1980/dynbitset/internal/conv"
	"github.com/hupe1980/dynbitset/internal/render"
)

// scenario produces the output lines for one independent demonstration.
// Every scenario builds its own vectors, so scenarios may run concurrently.
type scenario struct {
	name string
	run  func(cfg Config) ([]string, error)
}

var scenarios = []scenario{
	{name: "doubled-shift", run: doubledShift},
	{name: "index", run: index},
	{name: "or", run: orPrefix},
	{name: "shift-left", run: shiftLeft},
	{name: "shift-right", run: shiftRight},
	{name: "all-none", run: allNone},
}

// doubled returns s concatenated with itself times times.
func doubled(s string, times int) string {
	for range times {
		s += s
	}
	return s
}

func doubledShift(cfg Config) ([]string, error) {
	n, err := conv.IntToUint(cfg.Shift)
	if err != nil {
		return nil, fmt.Errorf("shift: %w", err)
	}

	v, err := dynbitset.Parse(doubled("101", 5))
	if err != nil {
		return nil, err
	}

	lines := []string{render.Line(v)}
	v.ShiftRight(n)
	return append(lines, render.Line(v)), nil
}

func index(Config) ([]string, error) {
	v, err := dynbitset.Parse("0010")
	if err != nil {
		return nil, err
	}

	var ones []string
	for i := range v.Ones() {
		ones = append(ones, fmt.Sprint(i))
	}
	return []string{render.Line(v), "ones: " + strings.Join(ones, ",")}, nil
}

func orPrefix(Config) ([]string, error) {
	a, err := dynbitset.Parse("10101")
	if err != nil {
		return nil, err
	}
	b, err := dynbitset.Parse("1100")
	if err != nil {
		return nil, err
	}

	ab := a.Clone().Or(b)
	ba := b.Clone().Or(a)
	return []string{render.Line(ab), render.Line(ba)}, nil
}

func shiftLeft(Config) ([]string, error) {
	v, err := dynbitset.Parse("1110")
	if err != nil {
		return nil, err
	}
	return []string{render.Line(v.ShiftLeft(3))}, nil
}

func shiftRight(Config) ([]string, error) {
	v, err := dynbitset.Parse("10100")
	if err != nil {
		return nil, err
	}
	return []string{
		render.Line(v.Clone().ShiftRight(2)),
		render.Line(v.Clone().ShiftRight(9)),
	}, nil
}

func allNone(Config) ([]string, error) {
	v, err := dynbitset.Parse(doubled("111", 4))
	if err != nil {
		return nil, err
	}
	return []string{
		render.Line(v),
		fmt.Sprintf("all: %t none: %t", v.All(), v.None()),
	}, nil
}
