package ids

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDIsMonotonic(t *testing.T) {
	g := NewULID()
	prev := ""
	for i := 0; i < 100; i++ {
		id, err := g.New()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if _, err := ulid.ParseStrict(id); err != nil {
			t.Fatalf("id %q is not a ULID: %v", id, err)
		}
		if id <= prev {
			t.Fatalf("id %q not after %q", id, prev)
		}
		prev = id
	}
}
