package world

// Message display durations in ticks.
const (
	MessageShort   = 60
	MessageDefault = 90
	MessageLong    = 120
	MessageZone    = 180
)

// Message is a line of text shown for a limited number of ticks.
type Message struct {
	Text      string
	Remaining int
}

// MessageQueue is a FIFO of timed messages. Only the head is displayed and
// only the head's timer runs.
type MessageQueue struct {
	items []Message
}

// Push appends a message unless it repeats the most recently queued one.
// Returns false when the message was dropped as a repeat.
func (q *MessageQueue) Push(text string, ticks int) bool {
	if n := len(q.items); n > 0 && q.items[n-1].Text == text {
		return false
	}
	if ticks <= 0 {
		ticks = MessageShort
	}
	q.items = append(q.items, Message{Text: text, Remaining: ticks})
	return true
}

// Current returns the message being displayed, if any.
func (q MessageQueue) Current() (Message, bool) {
	if len(q.items) == 0 {
		return Message{}, false
	}
	return q.items[0], true
}

// Tick advances the head message's timer and drops it once it expires.
func (q *MessageQueue) Tick() {
	if len(q.items) == 0 {
		return
	}
	q.items[0].Remaining--
	if q.items[0].Remaining <= 0 {
		q.items = q.items[1:]
	}
}

// count returns the number of queued messages.
func (q MessageQueue) count() int {
	return len(q.items)
}

// texts returns the queued message texts in display order.
func (q MessageQueue) texts() []string {
	out := make([]string, len(q.items))
	for i, m := range q.items {
		out[i] = m.Text
	}
	return out
}

// clone returns an independent copy of the queue.
func (q MessageQueue) clone() MessageQueue {
	return MessageQueue{items: append([]Message(nil), q.items...)}
}
