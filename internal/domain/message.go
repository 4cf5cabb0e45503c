package domain

// Author is the sub-record embedded in every chat message. ID is the author's
// external key (their email). The wire field names are the ones the chat
// client has always sent.
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Age       int    `json:"edad"`
	Alias     string `json:"alias"`
	Avatar    string `json:"avatar"`
}

// Message is a chat record. Date is stored verbatim as the client formatted
// it; a message is never persisted without its full author sub-record.
type Message struct {
	ID     string `json:"id"`
	Author Author `json:"author"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}

func NewMessage(author Author, date, text string) *Message {
	return &Message{
		Author: author,
		Date:   date,
		Text:   text,
	}
}
