package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb     string
		nl, echo, strict bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&strict, "strict", false, "reject unknown characters and leftover operands")
	flag.Parse()

	var opts []rpn.Option
	if strict {
		opts = append(opts, rpn.Strict())
	}
	co, eo := rpn.Split(opts)

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		if nl {
			v, err := lines(f)
			if err != nil {
				log.Fatal(err)
			}
			ins = append(ins, v...)
		} else {
			ins = append(ins, f)
		}
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	verb = "Result : " + verb + "\n"
	failed := false
	for _, in := range ins {
		p, err := rpn.Convert(in, co...)
		if err != nil {
			fmt.Println(err)
			failed = true
			continue
		}
		if echo {
			fmt.Printf("%v : ", p)
		}
		r, ok, err := p.Eval(eo...)
		switch {
		case err != nil:
			fmt.Println(err)
			failed = true
		case ok:
			fmt.Printf(verb, r)
		case echo:
			fmt.Println()
		}
	}
	if failed {
		os.Exit(1)
	}
}

// lines splits the rest of r into one scanner for each non-blank line. Lines
// may be any length.
func lines(r *bufio.Reader) ([]io.RuneScanner, error) {
	var v []io.RuneScanner
	for {
		s, err := r.ReadString('\n')
		if strings.TrimSpace(s) != "" {
			v = append(v, strings.NewReader(s))
		}
		if err != nil {
			if err == io.EOF {
				return v, nil
			}
			return v, err
		}
	}
}

func infile(inname string, std bool) (*bufio.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
