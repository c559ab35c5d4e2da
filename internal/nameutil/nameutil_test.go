package nameutil

import (
	"reflect"
	"testing"
)

func TestValidateName(t *testing.T) {
	if err := ValidateName("  "); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := ValidateName("냉면 (물냉/비냉)"); err != nil {
		t.Fatalf("unexpected error for valid name: %v", err)
	}
	// control char
	if err := ValidateName("bad\x00name"); err == nil {
		t.Fatalf("expected error for control bytes")
	}
	// invalid utf8 sequence
	if err := ValidateName(string([]byte{0xff, 0xff})); err == nil {
		t.Fatalf("expected error for invalid utf8")
	}
	if err := ValidateName("a:b"); err == nil {
		t.Fatalf("expected error for name containing ':'")
	}
}

func TestValidateTag(t *testing.T) {
	if err := ValidateTag("국물있음"); err != nil {
		t.Fatalf("unexpected error for valid tag: %v", err)
	}
	if err := ValidateTag("점심: 여름"); err != nil {
		t.Fatalf("':' is allowed in tags: %v", err)
	}
	if err := ValidateTag("a,b"); err == nil {
		t.Fatalf("expected error for tag containing ','")
	}
	if err := ValidateTag(""); err == nil {
		t.Fatalf("expected error for empty tag")
	}
	if err := ValidateTag("x\ty"); err == nil {
		t.Fatalf("expected error for control character")
	}
}

func TestSanitizeName(t *testing.T) {
	if s, changed := SanitizeName("hello\x00world"); s != "helloworld" || !changed {
		t.Fatalf("expected NUL removed: got %q changed=%v", s, changed)
	}
	if s, changed := SanitizeName(" a \u200B b "); s != "a  b" || !changed {
		t.Fatalf("expected zero-width removed and trimmed: got %q changed=%v", s, changed)
	}
	if s, changed := SanitizeName("라면"); s != "라면" || changed {
		t.Fatalf("expected clean name untouched: got %q changed=%v", s, changed)
	}
}

func TestSanitizeTags(t *testing.T) {
	got := SanitizeTags([]string{" 점심", "", "\u200B", "매움", "매움"})
	want := []string{"점심", "매움", "매움"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SanitizeTags = %v, want %v", got, want)
	}
}
