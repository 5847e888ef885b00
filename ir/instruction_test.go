package ir

import "testing"

func TestTarget(t *testing.T) {
	tests := []struct {
		in   Instruction
		want Target
	}{
		{Cd("/"), TargetRoot},
		{Cd(".."), TargetParent},
		{Cd("a"), TargetChild},
		{Cd("..."), TargetChild},
		{Dir(".."), TargetChild},
		{Ls(), TargetChild},
	}
	for _, tt := range tests {
		if got := tt.in.Target(); got != tt.want {
			t.Errorf("%s: got target %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Cd("/"), "$ cd /"},
		{Ls(), "$ ls"},
		{Dir("a"), "dir a"},
		{File("b.txt", 14848514), "14848514 b.txt"},
		{Instruction{Kind: Kind(42)}, "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	for _, k := range Kinds() {
		if k.String() == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
