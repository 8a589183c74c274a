package pos

const (
	TopicOrderCreated       = "pos.order.created"
	TopicOrderStatusChanged = "pos.order.status_changed"
	TopicPaymentRecorded    = "pos.payment.recorded"
)

// Partition key = order id, so all events of one order keep their order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
