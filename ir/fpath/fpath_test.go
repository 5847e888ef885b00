package fpath

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "empty is root", input: "", want: nil},
		{name: "slash is root", input: "/", want: nil},
		{name: "single", input: "/a", want: Path{"a"}},
		{name: "nested", input: "/a/e", want: Path{"a", "e"}},
		{name: "dotted names", input: "/d/d.log", want: Path{"d", "d.log"}},
		{name: "relative", input: "a/b", wantErr: true},
		{name: "double slash", input: "/a//b", wantErr: true},
		{name: "trailing slash", input: "/a/", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadPath) {
					t.Fatalf("expected ErrBadPath, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if got.String() != canonical(tt.input) {
				t.Errorf("String() = %q, want %q", got.String(), canonical(tt.input))
			}
		})
	}
}

func canonical(s string) string {
	if s == "" {
		return "/"
	}
	return s
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 8)
	base[0] = "a"
	x := base.Append("x")
	y := base.Append("y")
	if x.String() != "/a/x" || y.String() != "/a/y" {
		t.Errorf("aliasing: x=%s y=%s", x, y)
	}
	p := x.Parent()
	q := p.Append("z")
	if x.String() != "/a/x" {
		t.Errorf("append to parent clobbered child: %s (q=%s)", x, q)
	}
}

func TestParent(t *testing.T) {
	if !Root().Parent().IsRoot() {
		t.Error("parent of root should be root")
	}
	if got := MustParse("/a").Parent(); !got.IsRoot() {
		t.Errorf("parent of /a = %s", got)
	}
	if got := MustParse("/a/e/i").Parent(); got.String() != "/a/e" {
		t.Errorf("parent of /a/e/i = %s", got)
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		p, prefix string
		want      bool
	}{
		{"/a", "/", true},
		{"/", "/", true},
		{"/a/e", "/a", true},
		{"/a", "/a", true},
		{"/ab", "/a", false},
		{"/ab/c", "/a", false},
		{"/a", "/a/e", false},
		{"/b/a", "/a", false},
	}
	for _, tt := range tests {
		got := MustParse(tt.p).HasPrefix(MustParse(tt.prefix))
		if got != tt.want {
			t.Errorf("%s.HasPrefix(%s) = %v, want %v", tt.p, tt.prefix, got, tt.want)
		}
	}
	if MustParse("/a").IsChildOf(MustParse("/a")) {
		t.Error("a path is not its own child")
	}
	if !MustParse("/a/e").IsChildOf(MustParse("/a")) {
		t.Error("/a/e should be a child of /a")
	}
}

func TestCompareGroupsPrefixes(t *testing.T) {
	paths := []Path{
		MustParse("/b"),
		MustParse("/a/e/i"),
		MustParse("/ab"),
		MustParse("/a"),
		MustParse("/"),
		MustParse("/a/f"),
		MustParse("/a/e"),
		MustParse("/a.x"),
	}
	slices.SortFunc(paths, Path.Compare)
	var got []string
	for _, p := range paths {
		got = append(got, p.String())
	}
	want := []string{"/", "/a", "/a/e", "/a/e/i", "/a/f", "/a.x", "/ab", "/b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sort order mismatch (-want +got):\n%s", diff)
	}

	// everything under /a is contiguous
	prefix := MustParse("/a")
	seen, left := false, false
	for _, p := range paths {
		in := p.HasPrefix(prefix)
		switch {
		case in && left:
			t.Fatalf("%s found after leaving the /a run", p)
		case in:
			seen = true
		case seen:
			left = true
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	p := MustParse("/a/e")
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var q Path
	if err := q.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Errorf("got %s, want %s", q, p)
	}
}
