package matchop

import (
	"fmt"
	"regexp"

	"github.com/mondoc/go-mondoc/doc"
)

var regexSym = &regexSymbol{name: "$regex"}

func Regex() Symbol { return regexSym }

type regexSymbol struct {
	name
}

// Instance accepts either a pattern string or a [pattern, options] pair as
// produced by ApplyOps when $options accompanies $regex.
func (s *regexSymbol) Instance(arg *doc.Node) (Op, error) {
	pattern := arg
	options := ""
	if arg.Type == doc.ArrayType && arg.Len() == 2 {
		pattern = arg.Values[0]
		if arg.Values[1].Type != doc.StringType {
			return nil, fmt.Errorf("%s options must be a string", s)
		}
		options = arg.Values[1].String
	}
	if pattern.Type != doc.StringType {
		return nil, fmt.Errorf("%s needs a pattern string, got %s", s, pattern.Type)
	}
	expr := pattern.String
	if flags := reFlags(options); flags != "" {
		expr = "(?" + flags + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%s pattern: %w", s, err)
	}
	return &regexOp{op: op{name: s.name, arg: arg}, re: re}, nil
}

func reFlags(options string) string {
	flags := ""
	for _, o := range options {
		switch o {
		case 'i':
			flags += "i"
		case 'm':
			flags += "m"
		case 's':
			flags += "s"
		}
	}
	return flags
}

type regexOp struct {
	op
	re *regexp.Regexp
}

func (r regexOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if value == nil || value.Type != doc.StringType {
		return false, nil
	}
	return r.re.MatchString(value.String), nil
}
