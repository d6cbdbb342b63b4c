package mondoc

import (
	"testing"
	"time"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/parse"
)

type updateTest struct {
	name    string
	in      string
	update  string
	query   string
	want    string
	wantErr string
}

var updateTests = []updateTest{
	{
		name:   "set leaf",
		in:     "a: {b: 1}",
		update: "$set: {'a.b': 20}",
		want:   "{ a: { b: 20 } }",
	},
	{
		name:   "set creates intermediates",
		in:     "x: 1",
		update: "$set: {'a.b.c': 2}",
		want:   "{ x: 1, a: { b: { c: 2 } } }",
	},
	{
		name:   "unset",
		in:     "a: 1\nb: 2",
		update: "$unset: {a: ''}",
		want:   "{ b: 2 }",
	},
	{
		name:   "inc",
		in:     "a: 1",
		update: "$inc: {a: 2, b: 5}",
		want:   "{ a: 3, b: 5 }",
	},
	{
		name:   "inc float",
		in:     "a: 1.5",
		update: "$inc: {a: 2}",
		want:   "{ a: 3.5 }",
	},
	{
		name:    "inc non-numeric",
		in:      "a: 'x'",
		update:  "$inc: {a: 2}",
		wantErr: "[Error 14] Cannot apply $inc to a value of non-numeric type. The field 'a' has a String value",
	},
	{
		name:   "mul missing yields zero",
		in:     "a: 1",
		update: "$mul: {b: 3}",
		want:   "{ a: 1, b: 0 }",
	},
	{
		name:   "min keeps smaller",
		in:     "a: 5",
		update: "$min: {a: 3}",
		want:   "{ a: 3 }",
	},
	{
		name:   "max keeps larger",
		in:     "a: 5",
		update: "$max: {a: 3}",
		want:   "{ a: 5 }",
	},
	{
		name:   "rename",
		in:     "a: 5",
		update: "$rename: {a: 'b'}",
		want:   "{ b: 5 }",
	},
	{
		name:   "push",
		in:     "a: [1]",
		update: "$push: {a: 2}",
		want:   "{ a: [ 1, 2 ] }",
	},
	{
		name:   "push each at position",
		in:     "a: [1, 4]",
		update: "$push: {a: {$each: [2, 3], $position: 1}}",
		want:   "{ a: [ 1, 2, 3, 4 ] }",
	},
	{
		name:   "push slice keeps tail",
		in:     "a: [1, 2]",
		update: "$push: {a: {$each: [3, 4], $slice: -2}}",
		want:   "{ a: [ 3, 4 ] }",
	},
	{
		name:   "addToSet skips duplicates",
		in:     "a: [1, 2]",
		update: "$addToSet: {a: {$each: [2, 3]}}",
		want:   "{ a: [ 1, 2, 3 ] }",
	},
	{
		name:   "pop last",
		in:     "a: [1, 2, 3]",
		update: "$pop: {a: 1}",
		want:   "{ a: [ 1, 2 ] }",
	},
	{
		name:   "pop first",
		in:     "a: [1, 2, 3]",
		update: "$pop: {a: -1}",
		want:   "{ a: [ 2, 3 ] }",
	},
	{
		name:   "pull by equality",
		in:     "a: [1, 2, 1]",
		update: "$pull: {a: 1}",
		want:   "{ a: [ 2 ] }",
	},
	{
		name:   "pull by condition",
		in:     "a: [1, 5, 9]",
		update: "$pull: {a: {$gt: 4}}",
		want:   "{ a: [ 1 ] }",
	},
	{
		name:   "pullAll",
		in:     "a: [1, 2, 3, 2]",
		update: "$pullAll: {a: [2, 3]}",
		want:   "{ a: [ 1 ] }",
	},
	{
		name:   "positional all",
		in:     "values: [{active: false}, {active: false}]",
		update: "$set: {'values.$[].active': true}",
		want:   "{ values: [ { active: true }, { active: true } ] }",
	},
	{
		name:   "array filter",
		in:     "grades: [{x: [1, 2, 3]}, {x: [3, 4, 5]}, {x: [1, 2, 3]}]",
		update: "$inc: {'grades.$[].x.$[element]': 1}",
		query:  "arrayFilters: [{element: {$gte: 3}}]",
		want:   "{ grades: [ { x: [ 1, 2, 4 ] }, { x: [ 4, 5, 6 ] }, { x: [ 1, 2, 4 ] } ] }",
	},
	{
		name:   "array filter on subdocuments",
		in:     "values: [{name: 'A'}, {name: 'B'}, {name: 'C'}]",
		update: "$set: {'values.$[elem].active': true}",
		query:  "arrayFilters: [{'elem.name': {$in: ['A', 'B']}}]",
		want:   `{ values: [ { name: "A", active: true }, { name: "B", active: true }, { name: "C" } ] }`,
	},
	{
		name:    "unknown modifier",
		in:      "a: 1",
		update:  "$bogus: {a: 1}",
		wantErr: "[Error 9] Unknown modifier: $bogus. Expected a valid update modifier or pipeline-style update specified as an array",
	},
	{
		name:    "unused array filter",
		in:      "a: 1",
		update:  "$set: {'a.b': 20}",
		query:   "arrayFilters: [{x: {$gt: 20}}]",
		wantErr: "[Error 9] The array filter for identifier 'x' was not used in the update { $set: { a.b: 20 } }",
	},
}

func TestApplyUpdate(t *testing.T) {
	for _, tt := range updateTests {
		t.Run(tt.name, func(t *testing.T) {
			in := parse.MustParse(tt.in)
			before := encode.MustString(in)
			res, err := ApplyUpdate(in, parse.MustParse(tt.update), parse.MustParse(tt.query))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("got %s, want error %q", encode.MustString(res), tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("got error %q, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(res); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if after := encode.MustString(in); after != before {
				t.Errorf("input document mutated: %s -> %s", before, after)
			}
		})
	}
}

func TestApplyUpdateNilDocument(t *testing.T) {
	res, err := ApplyUpdate(nil, parse.MustParse("$set: {a: 1}"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res); got != "{ a: 1 }" {
		t.Errorf("got %s, want { a: 1 }", got)
	}
}

func TestApplyUpdateCurrentDate(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	res, err := ApplyUpdate(
		parse.MustParse("a: 1"),
		parse.MustParse("$currentDate: {when: true, at: {$type: 'timestamp'}}"),
		doc.Object(),
		WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}
	want := `{ a: 1, when: "2024-04-01T12:00:00Z", at: 1711972800 }`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
