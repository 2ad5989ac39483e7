// Package status holds the message line shown at the bottom of the screen.
//
// A message is either transient, cleared by the next keypress, or
// persistent, cleared only by an explicit Clear or a newer message.
package status

// Kind classifies a message for styling.
type Kind uint8

const (
	// KindInfo is an ordinary message.
	KindInfo Kind = iota

	// Error reports a failure the user should notice.
	Error
)

// String returns "info" or "error".
func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "info"
}

// Message is one status message.
type Message struct {
	Text       string
	Kind       Kind
	Persistent bool
}

// Line is the status sink. The zero value is empty and ready to use.
type Line struct {
	msg     Message
	present bool
}

// Transient shows text until the next keypress.
func (l *Line) Transient(text string) {
	l.set(Message{Text: text})
}

// Persistent shows text until Clear is called or another message replaces it.
func (l *Line) Persistent(text string) {
	l.set(Message{Text: text, Persistent: true})
}

// Error shows a persistent error message.
func (l *Line) Error(text string) {
	l.set(Message{Text: text, Kind: Error, Persistent: true})
}

// Set shows msg. An empty text clears the line.
func (l *Line) Set(msg Message) {
	l.set(msg)
}

func (l *Line) set(msg Message) {
	if msg.Text == "" {
		l.Clear()
		return
	}
	l.msg = msg
	l.present = true
}

// OnKeypress drops a transient message. Call it before handling each key.
func (l *Line) OnKeypress() {
	if l.present && !l.msg.Persistent {
		l.Clear()
	}
}

// Clear removes any message.
func (l *Line) Clear() {
	l.msg = Message{}
	l.present = false
}

// Current returns the message on display.
func (l *Line) Current() (Message, bool) {
	return l.msg, l.present
}

// Text returns the text on display, or "".
func (l *Line) Text() string {
	return l.msg.Text
}
