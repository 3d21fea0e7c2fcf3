package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, cellAddress string, webhookUrl string)
	GetWebhookUrl(sheetId string, cellAddress string) string
	Notify(sheetId string, cells []*CellView)
	Start()
	Close()
}
