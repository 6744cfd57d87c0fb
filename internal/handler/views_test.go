package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRating(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		8.5:  "⭐ 8.5/10",
		10:   "⭐ 10/10",
		0:    "⭐ 0/10",
		7.25: "⭐ 7.25/10",
	}
	for rating, want := range cases {
		require.Equal(t, want, formatRating(rating))
	}
}

func TestFieldErrorList_EscapesAndSorts(t *testing.T) {
	t.Parallel()

	out := fieldErrorList(map[string]string{
		"gender": "Gender must be male or female",
		"email":  "Email <b>is</b> required",
	})
	require.Contains(t, out, "Email &lt;b&gt;is&lt;/b&gt; required")
	// Sorted field order keeps re-renders stable.
	require.Less(t, indexOf(out, "email"), indexOf(out, "gender"))

	require.Empty(t, fieldErrorList(nil))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
