package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_SendCredentialMasksKey(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.NewJSONLogger(&buf, slog.LevelInfo))

	require.NoError(t, n.SendCredential(context.Background(), "a@b.c", "acme", "ABCD1234EFGH5678"))

	out := buf.String()
	assert.Contains(t, out, `"credential_suffix":"5678"`)
	assert.Contains(t, out, `"module":"notify"`)
	assert.NotContains(t, out, "ABCD1234EFGH5678")
}

func TestLogNotifier_SendLoginDetails(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.NewJSONLogger(&buf, slog.LevelInfo))

	require.NoError(t, n.SendLoginDetails(context.Background(), LoginDetails{
		Email: "a@b.c", PublicPageURL: "https://p/1", LoginURL: "https://login", LoginPassword: "hunter22",
	}))
	out := buf.String()
	assert.Contains(t, out, `"public_page_url":"https://p/1"`)
	assert.Contains(t, out, `"with_password":true`)
	assert.NotContains(t, out, "hunter22")
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "abc", suffix("abc"))
	assert.Equal(t, "cdef", suffix("abcdef"))
}
