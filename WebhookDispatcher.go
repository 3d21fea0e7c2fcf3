package main

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/d3vpratap/zeotap/contracts"
	"go.alis.build/alog"
)

const WebhookWorkersCount = 5

const WebhookQueueSize = 20

const WebhookTimeout = time.Second * 5

// SheetWebhooks maps a canonical cell address to its subscriber url
type SheetWebhooks map[string]string

type WebhookPayload struct {
	SheetId string              `json:"sheet_id"`
	Cell    *contracts.CellView `json:"cell"`
}

type WebhookSendCommand struct {
	Webhook string
	Payload WebhookPayload
}

type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	client   *http.Client
	mutex    sync.RWMutex
	done     chan struct{}
	closing  sync.Once
	workers  sync.WaitGroup
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, WebhookQueueSize),
		webhooks: map[string]SheetWebhooks{},
		done:     make(chan struct{}),
		client: &http.Client{
			Timeout: WebhookTimeout,
		},
	}
}

// SetWebhookUrl subscribes url to value changes of one cell. An empty url unsubscribes.
func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, cellAddress string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], cellAddress)
		if len(manager.webhooks[sheetId]) == 0 {
			delete(manager.webhooks, sheetId)
		}
	} else {
		manager.webhooks[sheetId][cellAddress] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, cellAddress string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[sheetId][cellAddress]
}

func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.CellView) {
	commands := manager.commands(sheetId, cells)
	if len(commands) == 0 {
		return
	}

	go manager.addToQueue(commands)
}

func (manager *WebhookDispatcher) commands(sheetId string, cells []*contracts.CellView) []WebhookSendCommand {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	sheetWebhooks, ok := manager.webhooks[sheetId]
	if !ok {
		return nil
	}

	var commands []WebhookSendCommand
	for _, cell := range cells {
		if webhook, ok := sheetWebhooks[cell.Address]; ok {
			commands = append(commands, WebhookSendCommand{
				Webhook: webhook,
				Payload: WebhookPayload{SheetId: sheetId, Cell: cell},
			})
		}
	}

	return commands
}

// addToQueue blocks while the queue is full; it gives up once the dispatcher is closed
func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		select {
		case manager.queue <- command:
		case <-manager.done:
			return
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting notifications, sends what is already queued and
// waits for the workers to finish
func (manager *WebhookDispatcher) Close() {
	manager.closing.Do(func() {
		close(manager.done)
	})

	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	ctx := context.Background()
	for {
		select {
		case command := <-manager.queue:
			manager.send(ctx, command)
		case <-manager.done:
			manager.drain(ctx)
			return
		}
	}
}

func (manager *WebhookDispatcher) drain(ctx context.Context) {
	for {
		select {
		case command := <-manager.queue:
			manager.send(ctx, command)
		default:
			return
		}
	}
}

func (manager *WebhookDispatcher) send(ctx context.Context, command WebhookSendCommand) {
	payload, err := json.Marshal(command.Payload)
	if err != nil {
		alog.Errorf(ctx, "webhook payload for %s: %v", command.Payload.Cell.Address, err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		alog.Warnf(ctx, "webhook send error: %v", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		alog.Warnf(ctx, "unexpected webhook response HTTP status: %s", response.Status)
	} else {
		alog.Debugf(ctx, "webhook %s notified about %s/%s", command.Webhook, command.Payload.SheetId, command.Payload.Cell.Address)
	}
}
