package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{HUD, Banner} {
		if !Loaded(name) {
			t.Fatalf("%s not loaded", name)
		}
		if w := font.MeasureString(name.Get(), "OUT OF AMMO"); w <= 0 {
			t.Fatalf("%s measures %v", name, w)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("junk", []byte("not a font"), 10); err == nil {
		t.Fatal("expected an error")
	}
	if Loaded("junk") {
		t.Fatal("failed font registered")
	}
}
