package mailer

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/mail"
	"strings"
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rendered captures the message handed to the transport as raw RFC 5322 text.
func rendered(t *testing.T, m *SMTP) *string {
	t.Helper()
	var raw string
	m.send = func(_ context.Context, _ *SMTP, msg *gomail.Msg) error {
		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		raw = buf.String()
		return nil
	}
	return &raw
}

func TestSMTPSend(t *testing.T) {
	m := NewSMTP("smtp.poskeeper.cr", "587", "bot@poskeeper.cr", "pw", "")
	raw := rendered(t, m)

	require.NoError(t, m.Send(context.Background(), "ana@poskeeper.cr", "Código", "1234"))

	parsed, err := mail.ReadMessage(strings.NewReader(*raw))
	require.NoError(t, err)
	assert.Contains(t, parsed.Header.Get("From"), "bot@poskeeper.cr")
	assert.Contains(t, parsed.Header.Get("To"), "ana@poskeeper.cr")
	assert.Contains(t, *raw, "1234")
}

func TestSMTPEncodesNonASCIISubject(t *testing.T) {
	m := NewSMTP("smtp.poskeeper.cr", "587", "bot@poskeeper.cr", "pw", "")
	raw := rendered(t, m)

	const subject = "Restablecimiento de Contraseña"
	require.NoError(t, m.Send(context.Background(), "ana@poskeeper.cr", subject, "Tu token es: 1234"))

	parsed, err := mail.ReadMessage(strings.NewReader(*raw))
	require.NoError(t, err)
	header := parsed.Header.Get("Subject")
	assert.NotContains(t, header, "ñ")
	for _, r := range header {
		assert.Less(t, r, rune(128), "subject header must be 7-bit")
	}
	decoded, err := new(mime.WordDecoder).DecodeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, subject, decoded)
}

func TestSMTPErrors(t *testing.T) {
	assert.ErrorIs(t, NewSMTP("", "587", "", "", "").Send(context.Background(), "a@b.cr", "s", "b"), ErrNotConfigured)

	m := NewSMTP("smtp.poskeeper.cr", "587", "", "", "bot@poskeeper.cr")
	boom := errors.New("refused")
	m.send = func(context.Context, *SMTP, *gomail.Msg) error { return boom }
	assert.ErrorIs(t, m.Send(context.Background(), "a@b.cr", "s", "b"), boom)

	m = NewSMTP("smtp.poskeeper.cr", "587", "", "", "bot@poskeeper.cr")
	m.send = func(context.Context, *SMTP, *gomail.Msg) error { return nil }
	assert.Error(t, m.Send(context.Background(), "not an address", "s", "b"))
}

func TestSMTPOptionsRejectBadPort(t *testing.T) {
	_, err := NewSMTP("smtp.poskeeper.cr", "smtp", "", "", "bot@poskeeper.cr").options()
	assert.Error(t, err)

	opts, err := NewSMTP("smtp.poskeeper.cr", "587", "bot@poskeeper.cr", "pw", "").options()
	require.NoError(t, err)
	assert.Len(t, opts, 5)
}

func TestLogSender(t *testing.T) {
	logger, hook := test.NewNullLogger()
	require.NoError(t, Log{Logger: logger}.Send(context.Background(), "a@b.cr", "Código", "1234"))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "a@b.cr", hook.LastEntry().Data["to"])
}
