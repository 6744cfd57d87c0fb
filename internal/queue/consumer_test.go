package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCatalogLog(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("logs", "catalog.log"))
	require.NoError(t, err)
	return string(b)
}

func TestHandleMessage_AppendsAuditLine(t *testing.T) {
	t.Chdir(t.TempDir())

	body, err := json.Marshal(FilmAddedEvent{
		FilmID:  42,
		Title:   "Interstellar",
		Genre:   []string{"Sci-Fi", "Drama"},
		Rating:  8.7,
		AddedBy: "ada@example.com",
		AddedAt: "2024-01-02T03:04:05Z",
	})
	require.NoError(t, err)
	require.NoError(t, handleMessage(body))

	line := readCatalogLog(t)
	require.Contains(t, line, "Film added")
	require.Contains(t, line, "film_id=42")
	require.Contains(t, line, `title="Interstellar"`)
	require.Contains(t, line, "rating=8.7")
	require.Contains(t, line, "genre=[Sci-Fi,Drama]")
	require.Contains(t, line, "added_by=ada@example.com")
	require.True(t, strings.HasPrefix(line, "[2024-01-02T03:04:05Z]"))
}

func TestHandleMessage_AppendsAcrossCalls(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, title := range []string{"First", "Second"} {
		body, err := json.Marshal(FilmAddedEvent{Title: title})
		require.NoError(t, err)
		require.NoError(t, handleMessage(body))
	}

	lines := strings.Split(strings.TrimSpace(readCatalogLog(t)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `title="First"`)
	require.Contains(t, lines[1], `title="Second"`)
}

func TestHandleMessage_EmptyGenreRendersEmptyList(t *testing.T) {
	t.Chdir(t.TempDir())

	body, err := json.Marshal(FilmAddedEvent{Title: "Plain"})
	require.NoError(t, err)
	require.NoError(t, handleMessage(body))

	require.Contains(t, readCatalogLog(t), "genre=[]")
}

func TestHandleMessage_RejectsMalformedPayload(t *testing.T) {
	t.Chdir(t.TempDir())

	err := handleMessage([]byte("not json"))
	require.Error(t, err)

	// A rejected message leaves no audit line behind.
	_, statErr := os.Stat(filepath.Join("logs", "catalog.log"))
	require.True(t, os.IsNotExist(statErr))
}
