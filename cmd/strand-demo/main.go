// Command strand-demo exercises the strand text library from the command
// line: it takes the argument text through trim, case mapping, counting,
// substitution, and numeric parsing.
//
// Usage:
//
//	strand-demo [flags] <text>...
//
// Example:
//
//	strand-demo --trim --replace "C++=Rust" "  I like C++  "
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/strand/text"
)

type options struct {
	trim    bool
	upper   bool
	lower   bool
	count   bool
	parse   bool
	replace string
}

func main() {
	var opt options
	pflag.BoolVar(&opt.trim, "trim", false, "strip surrounding whitespace")
	pflag.BoolVar(&opt.upper, "upper", false, "map to uppercase")
	pflag.BoolVar(&opt.lower, "lower", false, "map to lowercase")
	pflag.BoolVar(&opt.count, "count", false, "print byte/scalar/grapheme counts and display width")
	pflag.BoolVar(&opt.parse, "parse", false, "parse the text as a number")
	pflag.StringVar(&opt.replace, "replace", "", "substitute occurrences, given as old=new")
	pflag.Parse()

	if pflag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <text>...\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(opt, strings.Join(pflag.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "strand-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(opt options, input string) error {
	b, err := text.FromString(input)
	if err != nil {
		return errors.Annotate(err, "reading input")
	}

	if opt.replace != "" {
		from, to, ok := strings.Cut(opt.replace, "=")
		if !ok || from == "" {
			return errors.Errorf("invalid --replace value %q, want old=new", opt.replace)
		}
		fromV, err := text.NewView(from)
		if err != nil {
			return errors.Annotate(err, "parsing --replace pattern")
		}
		toV, err := text.NewView(to)
		if err != nil {
			return errors.Annotate(err, "parsing --replace replacement")
		}
		b = b.Replace(fromV, toV)
	}

	if opt.upper {
		b = b.ToUpper()
	}
	if opt.lower {
		b = b.ToLower()
	}

	v := b.AsView()
	if opt.trim {
		v = v.Trim()
	}

	if opt.count {
		fmt.Printf("bytes=%d scalars=%d graphemes=%d width=%d\n",
			v.Len(), v.CharCount(), v.GraphemeCount(), v.Width())
	}

	if opt.parse {
		n, err := text.ParseFloat(v)
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Printf("number=%v\n", n)
	}

	fmt.Println(v.String())
	return nil
}
