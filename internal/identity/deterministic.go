package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// NodeUUID identifies a graph node by its label (article title or raw URL).
// The same label always resolves to the same node id across runs.
func NodeUUID(label string) uuid.UUID {
	return UUID("go-linkmap:node:" + strings.TrimSpace(label))
}

// ArticleUUID identifies an archived article row by run and title.
func ArticleUUID(runID uuid.UUID, title string) uuid.UUID {
	return UUID("go-linkmap:article:" + runID.String() + ":" + strings.TrimSpace(title))
}

// EdgeUUID identifies an archived edge row by run, source title, and target URL.
func EdgeUUID(runID uuid.UUID, source, target string) uuid.UUID {
	return UUID("go-linkmap:edge:" + runID.String() + ":" + strings.TrimSpace(source) + ":" + strings.TrimSpace(target))
}
