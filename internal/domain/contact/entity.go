package contact

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptySenderName  = errors.New("sender name is required")
	ErrInvalidEmail     = errors.New("invalid sender email format")
	ErrEmptyMessageBody = errors.New("message body is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Message is a transient contact-form message, same lifecycle as a booking
// request: built, delivered, discarded.
type Message struct {
	senderName  string
	senderEmail string
	body        string
}

func NewMessage(senderName, senderEmail, body string) (*Message, error) {
	senderName = strings.TrimSpace(senderName)
	if senderName == "" {
		return nil, ErrEmptySenderName
	}

	senderEmail = strings.TrimSpace(senderEmail)
	if !emailRegex.MatchString(senderEmail) {
		return nil, ErrInvalidEmail
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessageBody
	}

	return &Message{
		senderName:  senderName,
		senderEmail: senderEmail,
		body:        body,
	}, nil
}

func (m *Message) SenderName() string  { return m.senderName }
func (m *Message) SenderEmail() string { return m.senderEmail }
func (m *Message) Body() string        { return m.body }
