package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/d3vpratap/zeotap/contracts"
	"github.com/stretchr/testify/assert"
)

func TestWebhookDispatcher_SetWebhookUrl(t *testing.T) {
	dispatcher := NewWebhookDispatcher()

	t.Run("subscribe", func(t *testing.T) {
		dispatcher.SetWebhookUrl("sheet1", "A1", "http://localhost/hook")
		assert.Equal(t, "http://localhost/hook", dispatcher.GetWebhookUrl("sheet1", "A1"))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Empty(t, dispatcher.GetWebhookUrl("sheet1", "B1"))
		assert.Empty(t, dispatcher.GetWebhookUrl("sheet2", "A1"))
	})

	t.Run("unsubscribe", func(t *testing.T) {
		dispatcher.SetWebhookUrl("sheet1", "A1", "")
		assert.Empty(t, dispatcher.GetWebhookUrl("sheet1", "A1"))
		assert.NotContains(t, dispatcher.webhooks, "sheet1")
	})
}

func TestWebhookDispatcher_Notify(t *testing.T) {
	received := make(chan WebhookPayload, 4)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		payload := WebhookPayload{}
		if err := json.Unmarshal(body, &payload); err == nil {
			received <- payload
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewWebhookDispatcher()
	dispatcher.Start()
	defer dispatcher.Close()

	dispatcher.SetWebhookUrl("sheet1", "B2", server.URL)

	dispatcher.Notify("sheet1", []*contracts.CellView{
		{Address: "A1", Cell: contracts.Cell{Raw: "1", Value: "1"}},
		{Address: "B2", Cell: contracts.Cell{Raw: "=A1+1", Formula: "=A1+1", Value: "2"}},
	})
	dispatcher.Notify("sheet2", []*contracts.CellView{
		{Address: "B2", Cell: contracts.Cell{Value: "ignored"}},
	})

	select {
	case payload := <-received:
		assert.Equal(t, "sheet1", payload.SheetId)
		assert.Equal(t, "B2", payload.Cell.Address)
		assert.Equal(t, "2", payload.Cell.Value)
		assert.Equal(t, "=A1+1", payload.Cell.Formula)
	case <-time.After(time.Second * 2):
		t.Fatal("webhook was not called")
	}

	select {
	case payload := <-received:
		t.Errorf("unexpected webhook call for %s/%s", payload.SheetId, payload.Cell.Address)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebhookDispatcher_Close(t *testing.T) {
	dispatcher := NewWebhookDispatcher()
	dispatcher.Start()
	dispatcher.SetWebhookUrl("sheet1", "A1", "http://127.0.0.1:1/hook")

	dispatcher.Close()
	dispatcher.Close()

	assert.NotPanics(t, func() {
		dispatcher.addToQueue(dispatcher.commands("sheet1", []*contracts.CellView{{Address: "A1"}}))
	})
}

func TestWebhookDispatcher_SlowSubscriberDoesNotBlockNotify(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewWebhookDispatcher()
	dispatcher.Start()

	dispatcher.SetWebhookUrl("sheet1", "A1", server.URL)

	// busy workers plus a full queue plus notifications still waiting to enqueue
	for i := 0; i < WebhookWorkersCount+WebhookQueueSize+1; i++ {
		dispatcher.Notify("sheet1", []*contracts.CellView{{Address: "A1"}})
	}

	subscribed := make(chan struct{})
	go func() {
		dispatcher.SetWebhookUrl("sheet1", "B1", server.URL)
		close(subscribed)
	}()

	notified := make(chan struct{})
	go func() {
		dispatcher.Notify("other-sheet", nil)
		close(notified)
	}()

	for name, done := range map[string]chan struct{}{"subscribe": subscribed, "notify": notified} {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Errorf("%s blocked behind a slow subscriber", name)
		}
	}

	close(release)
	dispatcher.Close()
}
