package keymap

import (
	"slices"
	"testing"
)

func TestAll_HaveKeysAndDescriptions(t *testing.T) {
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding %q has no context", b.Action)
		}
	}
}

func TestByContext(t *testing.T) {
	global := ByContext("global")
	if len(global) == 0 {
		t.Fatal("no global bindings")
	}
	for _, b := range global {
		if b.Context != "global" {
			t.Errorf("ByContext(global) returned %q binding", b.Context)
		}
	}
	if got := ByContext("nope"); got != nil {
		t.Errorf("ByContext(nope) = %v, want nil", got)
	}
}

func TestBinding_Key(t *testing.T) {
	b := Binding{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"}
	k := b.Key()

	if !slices.Equal(k.Keys(), []string{"q", "ctrl+c"}) {
		t.Errorf("Keys() = %v", k.Keys())
	}
	if k.Help().Key != "q" || k.Help().Desc != "Quit" {
		t.Errorf("Help() = %+v", k.Help())
	}
}

func TestShortHelp(t *testing.T) {
	got := ShortHelp("detail")
	if len(got) != len(ByContext("detail")) {
		t.Fatalf("ShortHelp(detail) len = %d", len(got))
	}
	if got[0].Help().Desc != "Open in store" {
		t.Errorf("first = %q", got[0].Help().Desc)
	}
}
