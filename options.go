package rpn

// Option is an option for conversion, evaluation, or both. Options that
// apply to only one stage are ignored by the other.
type Option interface {
	option()
}

// ConvertOption is an option for Convert.
type ConvertOption interface {
	Option
	convertOption(convertctx) convertctx
}

// EvalOption is an option for Evaluate.
type EvalOption interface {
	Option
	evalOption(evalctx) evalctx
}

// convertctx holds settings for conversion.
type convertctx struct {
	// unknown indicates that runes outside the language are errors.
	unknown bool
}

// evalctx holds settings for evaluation.
type evalctx struct {
	// leftovers indicates that more than one final value is an error.
	leftovers bool
}

type (
	unknownopt  struct{}
	leftoveropt struct{}
	strictopt   struct{}
)

func (unknownopt) option()  {}
func (leftoveropt) option() {}
func (strictopt) option()   {}

// RejectUnknown makes any rune that is neither whitespace nor part of a
// number, operator, or parenthesis a LexError. By default such runes are
// skipped, so "2x+1" converts the same as "2+1".
func RejectUnknown() ConvertOption {
	return unknownopt{}
}

func (unknownopt) convertOption(c convertctx) convertctx {
	c.unknown = true
	return c
}

// RejectLeftovers makes evaluation that ends with more than one value on the
// stack a LeftoverError. By default the top value is the result and the rest
// are discarded, so "1 2" evaluates to 2.
func RejectLeftovers() EvalOption {
	return leftoveropt{}
}

func (leftoveropt) evalOption(c evalctx) evalctx {
	c.leftovers = true
	return c
}

// Strict combines RejectUnknown and RejectLeftovers. It is both a
// ConvertOption and an EvalOption.
func Strict() interface {
	ConvertOption
	EvalOption
} {
	return strictopt{}
}

func (strictopt) convertOption(c convertctx) convertctx {
	return unknownopt{}.convertOption(c)
}

func (strictopt) evalOption(c evalctx) evalctx {
	return leftoveropt{}.evalOption(c)
}

// Split separates options by the stage they apply to. An option for both
// stages appears in both results. Nil options are dropped.
func Split(opts []Option) ([]ConvertOption, []EvalOption) {
	var co []ConvertOption
	var eo []EvalOption
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if o, ok := opt.(ConvertOption); ok {
			co = append(co, o)
		}
		if o, ok := opt.(EvalOption); ok {
			eo = append(eo, o)
		}
	}
	return co, eo
}
