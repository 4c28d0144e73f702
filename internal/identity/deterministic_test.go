package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("go-linkmap:node:Post A")
	second := UUID("go-linkmap:node:Post A")
	if first != second {
		t.Fatalf("expected stable uuid, got %s and %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected non-nil uuid for non-empty key")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for blank key, got %s", got)
	}
}

func TestNodeUUIDSeparatesLabels(t *testing.T) {
	a := NodeUUID("Post A")
	b := NodeUUID("Post B")
	if a == b {
		t.Fatalf("distinct labels must not collide: %s", a)
	}
}

func TestEdgeUUIDIncludesRunScope(t *testing.T) {
	runA := uuid.New()
	runB := uuid.New()
	if EdgeUUID(runA, "A", "https://x") == EdgeUUID(runB, "A", "https://x") {
		t.Fatal("edges from different runs must not collide")
	}
}
