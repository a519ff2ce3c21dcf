package idgen

import (
	"regexp"
	"testing"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewID(t *testing.T) {
	gen := Generator{}
	first := gen.NewID()
	if !uuidV4.MatchString(first) {
		t.Fatalf("not a uuid v4: %q", first)
	}
	if first == gen.NewID() {
		t.Fatalf("expected distinct ids")
	}
}
