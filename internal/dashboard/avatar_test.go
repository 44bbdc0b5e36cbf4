package dashboard

import (
	"strings"
	"testing"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Alex Carter":        "AC",
		"alex":               "A",
		"  mary-jane watson": "MW",
		"":                   "",
		"---":                "",
	}
	for in, want := range cases {
		if got := initials(in); got != want {
			t.Errorf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserAvatar_Deterministic(t *testing.T) {
	a1 := userAvatar("Alex Carter", "", 32)
	a2 := userAvatar("Alex Carter", "", 32)
	if a1 != a2 {
		t.Errorf("same name produced different avatars:\n  %s\n  %s", a1, a2)
	}
	if !strings.Contains(string(a1), ">AC</text>") {
		t.Errorf("avatar missing initials: %s", a1)
	}
	if !strings.Contains(string(a1), `width="32"`) {
		t.Errorf("avatar missing size: %s", a1)
	}
}

func TestUserAvatar_DifferentNames(t *testing.T) {
	if userAvatar("Alex Carter", "", 32) == userAvatar("Sam Rivera", "", 32) {
		t.Error("different names produced identical avatars")
	}
}

func TestUserAvatar_Image(t *testing.T) {
	got := string(userAvatar("Alex", `https://img.example/a.png?x="1"`, 24))
	if !strings.HasPrefix(got, "<img") {
		t.Fatalf("expected img tag, got %s", got)
	}
	if strings.Contains(got, `x="1"`) {
		t.Errorf("src not escaped: %s", got)
	}
}

func TestUserAvatar_Empty(t *testing.T) {
	if got := userAvatar("", "", 32); got != "" {
		t.Errorf("empty name should render nothing, got %s", got)
	}
}
