package core

// Clipboard abstracts an OS clipboard so the core never depends on a
// specific clipboard library. Adapters provide implementations; see the
// bubbletea adapter for one backed by atotto/clipboard.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// yankBuffer is the single paste slot. Kill, cut and copy operations
// replace its contents wholesale; paste reads without clearing. When an OS
// clipboard is attached the slot is mirrored to it, and reads prefer the OS
// contents so text copied in other programs can be pasted here.
type yankBuffer struct {
	text string
	clip Clipboard
}

func (y *yankBuffer) set(text string) {
	y.text = text
	if y.clip != nil {
		// A write failure leaves the local slot as the source of truth.
		_ = y.clip.Write(text)
	}
}

func (y *yankBuffer) get() string {
	if y.clip != nil {
		if text, err := y.clip.Read(); err == nil {
			return text
		}
	}
	return y.text
}
