package xmlrpc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	m := Map{
		{"foo", String("bar")},
		{"dup", Int(1)},
		{"baz", Float(1.5)},
		{"dup", Int(2)},
	}

	if got, ok := m.Get("dup"); !ok || got != Int(2) {
		t.Errorf(`Get("dup") = %v, %v, want 2, true`, got, ok)
	}
	if got, ok := m.Get("nope"); ok {
		t.Errorf(`Get("nope") = %v, true, want not found`, got)
	}
	if diff := cmp.Diff(m.Keys(), []string{"foo", "dup", "baz", "dup"}); diff != "" {
		t.Errorf("Keys() wrong result (-got+want):\n%s", diff)
	}

	var built Map
	built.Set("a", Int(1))
	built.Set("b", Int(2))
	built.Set("a", Int(3))
	want := Map{
		{"a", Int(3)},
		{"b", Int(2)},
	}
	if diff := cmp.Diff(built, want); diff != "" {
		t.Errorf("Set() wrong result (-got+want):\n%s", diff)
	}
}
