package domain

// Message is a raw broker record: the key routes, the value carries the
// encoded event.
type Message struct {
	Key   []byte
	Value []byte
}
