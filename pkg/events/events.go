// Package events names the realtime notifications clients subscribe to.
package events

const (
	NewOrder           = "nuevaOrden"
	OrderUpdated       = "ordenActualizada"
	OrderStatusChanged = "estadoOrden"
	InvoicePaid        = "facturaPagada"
)

// Envelope is the frame written to websocket clients and the message bus.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
