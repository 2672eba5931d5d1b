package commands

import (
	"context"

	"azulhomes/internal/domain/contact"
	"azulhomes/internal/domain/submission"
	reqdto "azulhomes/internal/handler/dto/request"
	"azulhomes/internal/pkg/config"
	"azulhomes/internal/pkg/errs"

	"github.com/google/uuid"
)

type ContactCommands interface {
	Submit(ctx context.Context, req reqdto.CreateContactRequest) (*SubmitResult, error)
	Outcome(id uuid.UUID) (submission.Snapshot, error)
}

type contactCommandsImpl struct {
	pipeline
	mail config.MailConfig
}

func NewContactCommands(
	mailer Mailer,
	registry *submission.Registry,
	mail config.MailConfig,
	after After,
) ContactCommands {
	return &contactCommandsImpl{
		pipeline: pipeline{
			mailer:   mailer,
			registry: registry,
			timeout:  mail.SendTimeout,
			after:    after,
		},
		mail: mail,
	}
}

func (c *contactCommandsImpl) Submit(ctx context.Context, req reqdto.CreateContactRequest) (*SubmitResult, error) {
	msg, err := contact.NewMessage(req.Name, req.Email, req.Message)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := c.run(
		ctx,
		c.mail.ContactTemplateID,
		c.buildParams(msg),
		"Failed to send contact message. ",
		"Contact message sent successfully!",
		nil,
	)
	return result, nil
}

// buildParams shapes the contact payload. While the contact template is the
// booking template, the message body rides in the phone field and the date
// fields carry placeholders; a dedicated template gets the message under its
// own key instead.
func (c *contactCommandsImpl) buildParams(msg *contact.Message) map[string]any {
	if c.mail.ContactTemplateID != c.mail.TemplateID {
		return map[string]any{
			"to_email":    c.mail.Destination,
			"sender_name": msg.SenderName(),
			"reply_to":    msg.SenderEmail(),
			"message":     msg.Body(),
			"subject":     "Contact Form - " + msg.SenderName(),
		}
	}

	return map[string]any{
		"to_email":          c.mail.Destination,
		"property_name":     "Contact Message from " + msg.SenderName(),
		"property_location": "General Inquiry",
		"property_price":    "Contact Form",
		"guest_name":        msg.SenderName(),
		"guest_email":       msg.SenderEmail(),
		"guest_phone":       msg.Body(),
		"check_in":          "N/A",
		"check_out":         "N/A",
		"guests":            1,
		"subject":           "Contact Form - " + msg.SenderName(),
		"reply_to":          msg.SenderEmail(),
	}
}
