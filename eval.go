package rpn

import (
	"io"
	"strconv"
	"strings"
)

// machine is the value stack for evaluating one postfix sequence.
type machine struct {
	stack []float64
}

func (m *machine) push(v float64) {
	m.stack = append(m.stack, v)
}

// pop removes the top from the stack and returns it. The second result is
// false if the stack is empty.
func (m *machine) pop() (float64, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r, true
}

// apply pops the operands of a binary operator and pushes its result. The
// first value popped is the right operand.
func (m *machine) apply(i int, op Kind) error {
	have := len(m.stack)
	r, ok := m.pop()
	if !ok {
		return &UnderflowError{Index: i, Op: op, Have: have}
	}
	l, ok := m.pop()
	if !ok {
		return &UnderflowError{Index: i, Op: op, Have: have}
	}
	switch op {
	case Add:
		m.push(l + r)
	case Sub:
		m.push(l - r)
	case Mul:
		m.push(l * r)
	case Div:
		// Division by zero gives ±Inf or NaN.
		m.push(l / r)
	default:
		panic("rpn: apply on non-operator " + op.String())
	}
	return nil
}

// Evaluate computes the value of a postfix sequence. If the sequence is
// empty, the second result is false and there is no error. An operator with
// fewer than two operands before it gives an *UnderflowError.
//
// Open and Close tokens are ignored. If more than one value remains at the
// end, the result is the last one pushed, unless RejectLeftovers is given.
// Panics if p contains a token whose Kind is not one of the declared kinds;
// Convert never produces one.
func Evaluate(p Postfix, opts ...EvalOption) (float64, bool, error) {
	var c evalctx
	for _, opt := range opts {
		c = opt.evalOption(c)
	}
	m := machine{stack: make([]float64, 0, len(p)/2+1)}
	for i, t := range p {
		switch t.Kind {
		case Number:
			m.push(t.Value)
		case Add, Sub, Mul, Div:
			if err := m.apply(i, t.Kind); err != nil {
				return 0, false, err
			}
		case Open, Close:
			// Never produced by Convert.
		default:
			panic("rpn: invalid token kind " + t.Kind.String() + " at index " + strconv.Itoa(i))
		}
	}
	if c.leftovers && len(m.stack) > 1 {
		return 0, false, &LeftoverError{Have: len(m.stack)}
	}
	v, ok := m.pop()
	return v, ok, nil
}

// Eval is a shortcut to convert an expression and evaluate the result. Each
// option is applied to every stage it is for.
func Eval(src io.RuneScanner, opts ...Option) (float64, bool, error) {
	co, eo := Split(opts)
	p, err := Convert(src, co...)
	if err != nil {
		return 0, false, err
	}
	return Evaluate(p, eo...)
}

// EvalString is a shortcut to convert and evaluate a string expression.
func EvalString(src string, opts ...Option) (float64, bool, error) {
	return Eval(strings.NewReader(src), opts...)
}
