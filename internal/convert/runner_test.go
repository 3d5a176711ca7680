package convert

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", stderrCap+100)

	got := truncate(long, stderrCap)
	if len(got) != stderrCap+len("...(truncated)") {
		t.Errorf("truncated length = %d", len(got))
	}
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Errorf("missing truncation marker: %q", got[len(got)-20:])
	}

	short := "renderer warning"
	if got := truncate(short, stderrCap); got != short {
		t.Errorf("short input changed: %q", got)
	}
}
