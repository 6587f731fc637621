package entity

// Input is what a turn accepts: either a raw user line or an existing history.
type Input interface {
	isInput()
}

// TextInput is a raw user message.
type TextInput string

// HistoryInput is an already-normalized message sequence.
type HistoryInput []Message

func (TextInput) isInput()    {}
func (HistoryInput) isInput() {}
