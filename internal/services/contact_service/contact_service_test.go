package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTelegram поднимает заглушку Bot API и собирает отправленные сообщения
func fakeTelegram(t *testing.T, sent *[]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"satori","user_name":"satori_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			require.NoError(t, r.ParseForm())
			*sent = append(*sent, r.Form.Get("text"))
			w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
		default:
			w.Write([]byte(`{"ok":true,"result":{}}`))
		}
	}))
}

func TestContactService_Send(t *testing.T) {
	var sent []string
	srv := fakeTelegram(t, &sent)
	defer srv.Close()

	service, err := NewContactService(slog.Default(), "test-token", 42, srv.URL+"/bot%s/%s")
	require.NoError(t, err)

	err = service.Send(context.Background(), ContactRequest{
		Name:           "Ivan",
		Phone:          "+79990001122",
		ContactMethods: []string{"phone", "telegram"},
		AdditionalInfo: "test",
	})

	require.NoError(t, err)
	require.Len(t, sent, 1)

	msg := sent[0]
	assert.Contains(t, msg, "Новая заявка")
	assert.Contains(t, msg, "Ivan")
	assert.Contains(t, msg, "+79990001122")
	assert.Contains(t, msg, "phone, telegram")
	assert.Contains(t, msg, "test")
}

func TestContactService_SendUnconfigured(t *testing.T) {
	service, err := NewContactService(slog.Default(), "", 0, "")
	require.NoError(t, err)

	err = service.Send(context.Background(), ContactRequest{Name: "Ivan"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestContactService_SendDownstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"satori","user_name":"satori_bot"}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "boom"})
	}))
	defer srv.Close()

	service, err := NewContactService(slog.Default(), "test-token", 42, srv.URL+"/bot%s/%s")
	require.NoError(t, err)

	err = service.Send(context.Background(), ContactRequest{Name: "Ivan", Phone: "+7"})

	assert.Error(t, err)
}

func TestFormatContactMessage(t *testing.T) {
	msg := FormatContactMessage(ContactRequest{
		Name:  "Ivan",
		Phone: "+7",
	})

	assert.Contains(t, msg, "Имя: Ivan")
	assert.Contains(t, msg, "Телефон: +7")
	assert.NotContains(t, msg, "Способы связи")
	assert.NotContains(t, msg, "Дополнительно")
}
