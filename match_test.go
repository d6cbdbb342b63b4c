package mondoc

import (
	"testing"

	"github.com/mondoc/go-mondoc/parse"
)

type matchTest struct {
	in    string
	query string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    "a: 1",
		query: "a: 1",
		res:   true,
	},
	{
		in:    "a: 1",
		query: "a: 2",
		res:   false,
	},
	{
		in:    "a: 1",
		query: "null",
		res:   true,
	},
	{
		in:    "a: 1\nb: 2",
		query: "a: 1",
		res:   true,
	},
	{
		in:    "a: 1",
		query: "a: 1\nb: 2",
		res:   false,
	},
	{
		in:    "a: 1",
		query: "b: null",
		res:   true,
	},
	{
		in:    "a: {b: 10}",
		query: "'a.b': 10",
		res:   true,
	},
	{
		in:    "a: {b: 10}",
		query: "'a.b': {$gt: 5}",
		res:   true,
	},
	{
		in:    "a: {b: 10}",
		query: "'a.b': {$gt: 10}",
		res:   false,
	},
	{
		in:    "a: [1, 2, 3]",
		query: "a: 2",
		res:   true,
	},
	{
		in:    "a: [1, 2, 3]",
		query: "'a.1': 2",
		res:   true,
	},
	{
		in:    "values: [{name: 'A'}, {name: 'B'}]",
		query: "'values.name': 'B'",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "a: {$in: [5, 10]}",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "a: {$nin: [5, 10]}",
		res:   false,
	},
	{
		in:    "a: 10",
		query: "a: {$exists: true}",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "b: {$exists: false}",
		res:   true,
	},
	{
		in:    "a: [1, 2, 3]",
		query: "a: {$size: 3}",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "a: {$mod: [3, 1]}",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "a: {$not: {$gt: 20}}",
		res:   true,
	},
	{
		in:    "a: 'hello'",
		query: "a: {$regex: 'h.*o'}",
		res:   true,
	},
	{
		in:    "a: 'HELLO'",
		query: "a: {$regex: 'h.*o', $options: 'i'}",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "a: {$type: 'number'}",
		res:   true,
	},
	{
		in:    "a: [{b: 1}, {b: 5}]",
		query: "a: {$elemMatch: {b: {$gte: 5}}}",
		res:   true,
	},
	{
		in:    "a: [1, 2, 3]",
		query: "a: {$all: [1, 3]}",
		res:   true,
	},
	{
		in:    "a: 1\nb: 2",
		query: "$and: [{a: 1}, {b: 2}]",
		res:   true,
	},
	{
		in:    "a: 1\nb: 2",
		query: "$or: [{a: 5}, {b: 2}]",
		res:   true,
	},
	{
		in:    "a: 1\nb: 2",
		query: "$nor: [{a: 5}, {b: 7}]",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "$where: 'a > 5'",
		res:   true,
	},
	{
		in:    "a: 10",
		query: "$where: 'this.a > 50'",
		res:   false,
	},
}

func TestMatch(t *testing.T) {
	for _, tt := range matchTests {
		y := parse.MustParse(tt.in)
		q := parse.MustParse(tt.query)
		res, err := Match(y, q)
		if err != nil {
			t.Errorf("error matching %q against %q: %s", tt.in, tt.query, err)
			continue
		}
		if res != tt.res {
			t.Errorf("match %q against %q: got %t, want %t", tt.in, tt.query, res, tt.res)
		}
	}
}

func TestMatchUnknownOperator(t *testing.T) {
	_, err := Match(parse.MustParse("a: 1"), parse.MustParse("a: {$bogus: 1}"))
	if err == nil {
		t.Fatal("expected error for unknown operator")
	}
}
