package lagoon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for dig plans.
var (
	// ErrBadInstruction indicates a malformed plan line.
	ErrBadInstruction = errors.New("lagoon: malformed instruction")
	// ErrEmptyPlan indicates a plan with no instructions.
	ErrEmptyPlan = errors.New("lagoon: empty plan")
	// ErrOpenWalk indicates a plan that does not end where it started.
	ErrOpenWalk = errors.New("lagoon: walk does not close")
)

// Instruction moves Count unit steps in Heading.
type Instruction struct {
	Heading geom.Direction
	Count   int64
}

// hexHeadings maps the last digit of a colour code.
var hexHeadings = [4]geom.Direction{geom.Right, geom.Down, geom.Left, geom.Up}

// ParsePlan decodes every line as a literal (heading, count) instruction.
func ParsePlan(text string) ([]Instruction, error) {
	return parse(text, func(heading, count, _ string) (Instruction, error) {
		d, err := geom.ParseDirection(heading)
		if err != nil {
			return Instruction{}, err
		}
		n, err := strconv.ParseInt(count, 10, 64)
		if err != nil || n <= 0 {
			return Instruction{}, fmt.Errorf("count %q", count)
		}
		return Instruction{Heading: d, Count: n}, nil
	})
}

// ParseHexPlan decodes every line from its colour code; the literal heading
// and count are ignored.
func ParseHexPlan(text string) ([]Instruction, error) {
	return parse(text, func(_, _, code string) (Instruction, error) {
		return DecodeHex(code)
	})
}

// DecodeHex decodes "(#70c710)" or "#70c710": 0x70c71 steps, heading 0 (R).
func DecodeHex(code string) (Instruction, error) {
	code = strings.TrimSuffix(strings.TrimPrefix(code, "("), ")")
	code = strings.TrimPrefix(code, "#")
	if len(code) != 6 {
		return Instruction{}, fmt.Errorf("%w: colour %q", ErrBadInstruction, code)
	}
	n, err := strconv.ParseInt(code[:5], 16, 64)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: colour %q: %v", ErrBadInstruction, code, err)
	}
	h := code[5] - '0'
	if h > 3 {
		return Instruction{}, fmt.Errorf("%w: colour %q heading digit", ErrBadInstruction, code)
	}

	return Instruction{Heading: hexHeadings[h], Count: n}, nil
}

// parse splits lines into three fields and hands them to decode.
func parse(text string, decode func(heading, count, code string) (Instruction, error)) ([]Instruction, error) {
	var plan []Instruction
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadInstruction, i+1, line)
		}
		in, err := decode(f[0], f[1], f[2])
		if err != nil {
			if errors.Is(err, ErrBadInstruction) {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadInstruction, i+1, err)
		}
		plan = append(plan, in)
	}
	if len(plan) == 0 {
		return nil, ErrEmptyPlan
	}

	return plan, nil
}
