package rpn

import "testing"

func TestSplit(t *testing.T) {
	co, eo := Split([]Option{RejectUnknown(), nil, RejectLeftovers(), Strict()})
	if len(co) != 2 || len(eo) != 2 {
		t.Fatalf("want 2 convert and 2 eval options, got %d and %d", len(co), len(eo))
	}
	var c convertctx
	for _, opt := range co {
		c = opt.convertOption(c)
	}
	if !c.unknown {
		t.Error("convert options don't reject unknown runes")
	}
	var e evalctx
	for _, opt := range eo[1:] {
		e = opt.evalOption(e)
	}
	if !e.leftovers {
		t.Error("Strict doesn't reject leftovers")
	}
}

func TestStrict(t *testing.T) {
	cases := []struct {
		src string
		err bool
	}{
		{"1+2", false},
		{"2x+1", true},
		{"1 2", true},
		{"(1+2)*3", false},
	}
	for _, c := range cases {
		_, _, err := EvalString(c.src, Strict())
		if (err != nil) != c.err {
			t.Errorf("strict %q: want error %t, got %v", c.src, c.err, err)
		}
		if _, _, err := EvalString(c.src); err != nil {
			t.Errorf("lenient %q: unexpected error %v", c.src, err)
		}
	}
}
