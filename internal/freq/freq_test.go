package freq

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCountBasic(t *testing.T) {
	got := Count("aab")
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct characters, got %d", len(got))
	}
	if got['a'] != 2 {
		t.Errorf("expected count 2 for 'a', got %d", got['a'])
	}
	if got['b'] != 1 {
		t.Errorf("expected count 1 for 'b', got %d", got['b'])
	}
}

func TestCountEmptyText(t *testing.T) {
	got := Count("")
	if got == nil {
		t.Fatal("expected non-nil table for empty text")
	}
	if len(got) != 0 {
		t.Errorf("expected empty table, got %d entries", len(got))
	}
}

func TestCountWhitespaceCounted(t *testing.T) {
	got := Count("a b\tc")
	if got[' '] != 1 {
		t.Errorf("expected count 1 for space, got %d", got[' '])
	}
	if got['\t'] != 1 {
		t.Errorf("expected count 1 for tab, got %d", got['\t'])
	}
}

func TestCountCRLFNormalized(t *testing.T) {
	crlf := Count("line one\r\nline two\r\n")
	lf := Count("line one\nline two\n")

	if len(crlf) != len(lf) {
		t.Fatalf("table sizes differ: CRLF %d vs LF %d", len(crlf), len(lf))
	}
	for r, n := range lf {
		if crlf[r] != n {
			t.Errorf("count for %q: CRLF %d vs LF %d", r, crlf[r], n)
		}
	}
	if crlf['\r'] != 0 {
		t.Errorf("expected no carriage returns after normalization, got %d", crlf['\r'])
	}
}

func TestCountLoneCarriageReturn(t *testing.T) {
	got := Count("a\rb")
	if got['\n'] != 1 {
		t.Errorf("expected lone CR to count as one newline, got %d", got['\n'])
	}
	if got['\r'] != 0 {
		t.Errorf("expected no carriage returns, got %d", got['\r'])
	}
}

func TestCountMixedLineEndings(t *testing.T) {
	got := Count("a\r\nb\rc\nd")
	if got['\n'] != 3 {
		t.Errorf("expected 3 newlines, got %d", got['\n'])
	}
	for _, r := range "abcd" {
		if got[r] != 1 {
			t.Errorf("expected count 1 for %q, got %d", r, got[r])
		}
	}
}

func TestCountUnicode(t *testing.T) {
	got := Count("héé日")
	if got['h'] != 1 {
		t.Errorf("expected count 1 for 'h', got %d", got['h'])
	}
	if got['é'] != 2 {
		t.Errorf("expected count 2 for 'é', got %d", got['é'])
	}
	if got['日'] != 1 {
		t.Errorf("expected count 1 for '日', got %d", got['日'])
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("abb"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got['a'] != 1 || got['b'] != 2 {
		t.Errorf("unexpected table: %v", got)
	}
}

func TestFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("expected empty file to succeed, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty table, got %d entries", len(got))
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromFileInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := FromFile(path)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}
