package domain

// Input is the tagged variant of payload shapes an inbound chat event can
// carry into a form step. The interface is sealed so every consumer switch
// covers the full set.
type Input interface {
	isInput()
}

// TextInput is a plain text message.
type TextInput struct {
	Text string
}

// SelectionInput is a button selection reported back by the transport as an
// opaque code.
type SelectionInput struct {
	Code string
}

// ContactInput is a structured contact share carrying name and phone as a
// single unit.
type ContactInput struct {
	Name  string
	Phone string
}

func (TextInput) isInput()      {}
func (SelectionInput) isInput() {}
func (ContactInput) isInput()   {}
