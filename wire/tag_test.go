package wire

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTags(t *testing.T) {
	for _, tag := range []Tag{TagString, TagInt, TagFloat, TagDouble, TagStruct} {
		if !tag.Valid() {
			t.Errorf("%s.Valid() = false, want true", tag)
		}
	}
	for _, tag := range []Tag{"boolean", "i4", "array", "base64", "dateTime.iso8601", "nil", "value", ""} {
		if tag.Valid() {
			t.Errorf("%q.Valid() = true, want false", tag)
		}
	}

	// Every scalar must encode to a tag that decodes back to the same
	// scalar type.
	for _, s := range []Scalar{Int(1), Double(1.5), String("x")} {
		if !s.Tag().Valid() {
			t.Errorf("%T encodes as unknown tag %s", s, s.Tag())
		}
		got, err := Cast(s.Tag(), s.Text())
		if err != nil {
			t.Errorf("Cast(%s, %q) got err: %v", s.Tag(), s.Text(), err)
			continue
		}
		if got != s {
			t.Errorf("Cast(%s, %q) = %#v, want %#v", s.Tag(), s.Text(), got, s)
		}
	}
}

func TestCast(t *testing.T) {
	tests := []struct {
		tag  Tag
		text string
		want Scalar
	}{
		{TagString, "f00", String("f00")},
		{TagString, "  spaced  ", String("  spaced  ")},
		{TagString, "", String("")},
		{TagInt, "1337", Int(1337)},
		{TagInt, "-42", Int(-42)},
		{TagInt, " 7\n", Int(7)},
		{TagInt, "9223372036854775807", Int(9223372036854775807)},
		{TagDouble, "13.37", Double(13.37)},
		{TagDouble, "1.0E+20", Double(1e20)},
		{TagFloat, "133.7", Double(133.7)},
		{TagFloat, "-2", Double(-2)},
	}

	for _, tc := range tests {
		got, err := Cast(tc.tag, tc.text)
		if err != nil {
			t.Errorf("Cast(%s, %q) got err: %v", tc.tag, tc.text, err)
			continue
		}
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("Cast(%s, %q) wrong result (-got+want):\n%s", tc.tag, tc.text, diff)
		}
	}
}

func TestCastErrors(t *testing.T) {
	castErrs := []struct {
		tag  Tag
		text string
	}{
		{TagInt, "1.5"},
		{TagInt, "abc"},
		{TagInt, ""},
		{TagInt, "9223372036854775808"},
		{TagDouble, "abc"},
		{TagDouble, ""},
		{TagFloat, "1e400"},
		{TagDouble, "NaN"},
		{TagDouble, "-Inf"},
	}
	for _, tc := range castErrs {
		_, err := Cast(tc.tag, tc.text)
		var ce CastError
		if !errors.As(err, &ce) {
			t.Errorf("Cast(%s, %q) got err %v, want CastError", tc.tag, tc.text, err)
			continue
		}
		if ce.Tag != tc.tag || ce.Text != tc.text {
			t.Errorf("Cast(%s, %q) got CastError for (%s, %q)", tc.tag, tc.text, ce.Tag, ce.Text)
		}
	}

	var ce CastError
	if _, err := Cast(TagInt, "x"); !errors.As(err, &ce) || !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("Cast(int, x) got err %v, want CastError wrapping strconv.ErrSyntax", err)
	}

	for _, tag := range []Tag{"boolean", "struct", "i4", "base64"} {
		_, err := Cast(tag, "1")
		var ute UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Errorf("Cast(%s) got err %v, want UnsupportedTypeError", tag, err)
			continue
		}
		if ute.Type != string(tag) {
			t.Errorf("Cast(%s) UnsupportedTypeError.Type = %q, want %q", tag, ute.Type, tag)
		}
	}
}
