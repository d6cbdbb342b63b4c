package doc

import "testing"

func mustSetPath(t *testing.T, y *Node, path string, v *Node) {
	t.Helper()
	if err := SetPath(y, path, v); err != nil {
		t.Fatalf("SetPath(%s): %s", path, err)
	}
}

func TestSetGetPath(t *testing.T) {
	y := Object()
	mustSetPath(t, y, "a.b", FromInt(1))
	if got := GetPath(y, "a.b"); got == nil || *got.Int64 != 1 {
		t.Errorf("GetPath(a.b): got %v", got)
	}
	if got := GetPath(y, "a.c"); got != nil {
		t.Errorf("GetPath(a.c): got %v, want nil", got)
	}
	mustSetPath(t, y, "a.b", FromInt(2))
	if got := GetPath(y, "a.b"); *got.Int64 != 2 {
		t.Errorf("GetPath(a.b) after overwrite: got %d", *got.Int64)
	}
}

func TestSetPathArray(t *testing.T) {
	y := Object()
	y.Set("a", Array(FromInt(1), FromInt(2)))
	mustSetPath(t, y, "a.1", FromInt(5))
	if got := GetPath(y, "a.1"); *got.Int64 != 5 {
		t.Errorf("a.1: got %d", *got.Int64)
	}
	// writing past the end pads with nulls
	mustSetPath(t, y, "a.4", FromInt(9))
	if n := Get(y, "a").Len(); n != 5 {
		t.Fatalf("len(a): got %d, want 5", n)
	}
	if got := GetPath(y, "a.3"); got.Type != NullType {
		t.Errorf("a.3: got %s, want null", got.Type)
	}
}

func TestSetPathIntoArrayElement(t *testing.T) {
	y := Object()
	y.Set("a", Array(Object()))
	mustSetPath(t, y, "a.0.active", FromBool(true))
	if got := GetPath(y, "a.0.active"); got == nil || !got.Bool {
		t.Errorf("a.0.active: got %v", got)
	}
}

func TestSetPathNotViable(t *testing.T) {
	y := Object()
	y.Set("a", FromInt(1))
	if err := SetPath(y, "a.b", FromInt(2)); err == nil {
		t.Error("expected error setting below a scalar")
	}
	y.Set("c", Array(FromInt(1)))
	if err := SetPath(y, "c.x", FromInt(2)); err == nil {
		t.Error("expected error for non-numeric array segment")
	}
}

func TestUnsetPath(t *testing.T) {
	y := Object()
	mustSetPath(t, y, "a.b", FromInt(1))
	mustSetPath(t, y, "a.c", FromInt(2))
	UnsetPath(y, "a.b")
	if GetPath(y, "a.b") != nil {
		t.Error("a.b still present")
	}
	if GetPath(y, "a.c") == nil {
		t.Error("a.c removed")
	}
	// unsetting an array element nulls it to keep sibling indices stable
	y.Set("xs", Array(FromInt(1), FromInt(2)))
	UnsetPath(y, "xs.0")
	if n := Get(y, "xs").Len(); n != 2 {
		t.Fatalf("len(xs): got %d, want 2", n)
	}
	if got := GetPath(y, "xs.0"); got.Type != NullType {
		t.Errorf("xs.0: got %s, want null", got.Type)
	}
}

func TestClone(t *testing.T) {
	y := Object()
	mustSetPath(t, y, "a.b", FromInt(1))
	c := y.Clone()
	mustSetPath(t, c, "a.b", FromInt(2))
	if got := GetPath(y, "a.b"); *got.Int64 != 1 {
		t.Errorf("clone shares storage: got %d", *got.Int64)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b *Node
		want int
	}{
		{FromInt(1), FromInt(1), 0},
		{FromInt(1), FromFloat(1), 0},
		{FromInt(1), FromFloat(1.5), -1},
		{FromString("a"), FromString("b"), -1},
		{Null(), FromInt(0), -1},
		{FromInt(0), FromString(""), -1},
		{Array(FromInt(1)), Array(FromInt(1), FromInt(2)), -1},
		{Array(FromInt(2)), Array(FromInt(1), FromInt(2)), 1},
		{Object().Set("a", FromInt(1)), Object().Set("a", FromInt(1)), 0},
		{Object().Set("a", FromInt(1)), Object().Set("b", FromInt(1)), -1},
	}
	for _, tt := range tests {
		if got := sign(Compare(tt.a, tt.b)); got != tt.want {
			t.Errorf("Compare(%v, %v): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := sign(Compare(tt.b, tt.a)); got != -tt.want {
			t.Errorf("Compare(%v, %v): got %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
