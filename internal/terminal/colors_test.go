package terminal

import (
	"testing"
)

func TestEnableDisableColors(t *testing.T) {
	EnableColors()

	if Color(Cyan) != Cyan {
		t.Error("expected color code when colors enabled")
	}

	DisableColors()

	if Color(Cyan) != "" {
		t.Error("expected empty string when colors disabled")
	}
	if ColorsEnabled() {
		t.Error("expected ColorsEnabled() to be false")
	}

	EnableColors()

	if Color(Cyan) != Cyan {
		t.Error("expected color code after re-enabling colors")
	}
}

func TestSetColorsEnabled(t *testing.T) {
	defer EnableColors()

	SetColorsEnabled(false)
	if Color(Bold) != "" {
		t.Error("expected no bold code when disabled")
	}

	SetColorsEnabled(true)
	if Color(Bold) != Bold {
		t.Error("expected bold code when enabled")
	}
}

func TestIsTTY_InvalidFD(t *testing.T) {
	if IsTTY(-1) {
		t.Error("expected invalid fd to not be a TTY")
	}
}
