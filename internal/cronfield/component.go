package cronfield

import "strings"

// Component is one comma-separated piece of a field token.
type Component interface {
	// Values expands the component. The result is not bounds checked.
	Values(b Bounds) []int
}

// Wildcard is "*", every value in the field's bounds.
type Wildcard struct{}

func (Wildcard) Values(b Bounds) []int {
	return Range{Start: b.Min, End: b.Max}.Values(b)
}

// Single is one literal value.
type Single struct {
	Value int
}

func (s Single) Values(Bounds) []int {
	return []int{s.Value}
}

// Range is the inclusive sequence Start..End. Start never exceeds End.
type Range struct {
	Start int
	End   int
}

// Values lists Start..End. Generation stops at the first value past b.Max,
// which is the only one above the bounds a check can report.
func (r Range) Values(b Bounds) []int {
	return r.multiples(b, 1)
}

// multiples lists the values of r divisible by step, stopping after the
// first one greater than b.Max.
func (r Range) multiples(b Bounds, step int) []int {
	var values []int
	for v := r.Start + (step-r.Start%step)%step; v <= r.End; v += step {
		values = append(values, v)
		if v > b.Max {
			break
		}
	}
	return values
}

// Stepped keeps the values of Base that are divisible by Divisor.
type Stepped struct {
	Base    Component
	Divisor int
}

func (s Stepped) Values(b Bounds) []int {
	switch base := s.Base.(type) {
	case Wildcard:
		return Range{Start: b.Min, End: b.Max}.multiples(b, s.Divisor)
	case Range:
		return base.multiples(b, s.Divisor)
	}

	var values []int
	for _, v := range s.Base.Values(b) {
		if v%s.Divisor == 0 {
			values = append(values, v)
		}
	}
	return values
}

var (
	_ Component = Wildcard{}
	_ Component = Single{}
	_ Component = Range{}
	_ Component = Stepped{}
)

// ParseComponent parses text as a single component of field f.
//
//	component := (wildcard | range | number) ['/' divisor]
func ParseComponent(text string, f Field) (Component, error) {
	baseText, divisorText, stepped := strings.Cut(text, "/")

	base, err := parseBase(baseText, f)
	if err != nil {
		return nil, err
	}
	if !stepped {
		return base, nil
	}

	divisor, err := f.literal(divisorText)
	if err != nil {
		return nil, err
	}
	if divisor == 0 {
		return nil, &InvalidNumberError{Field: f.Name, Literal: divisorText, Err: ErrDivisionByZero}
	}
	return Stepped{Base: base, Divisor: divisor}, nil
}

func parseBase(text string, f Field) (Component, error) {
	if text == "*" {
		return Wildcard{}, nil
	}

	startText, endText, isRange := strings.Cut(text, "-")
	if !isRange {
		v, err := f.resolve(text)
		if err != nil {
			return nil, err
		}
		return Single{Value: v}, nil
	}

	start, err := f.resolve(startText)
	if err != nil {
		return nil, err
	}
	end, err := f.resolve(endText)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, &InvalidRangeError{Field: f.Name, Start: start, End: end}
	}
	return Range{Start: start, End: end}, nil
}
