package slacknotify

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// SlackClient часть API slack, которая нужна для отправки сообщений
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier отправляет сообщения о новых бронированиях в канал Slack
type Notifier struct {
	client    SlackClient
	channelID string
	location  *time.Location
}

// NewNotifier создает notifier поверх готового клиента
func NewNotifier(client SlackClient, channelID string, loc *time.Location) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		location:  loc,
	}
}

// New создает notifier с клиентом slack по токену бота
func New(botToken string, channelID string, loc *time.Location) *Notifier {
	return NewNotifier(slack.New(botToken), channelID, loc)
}

// BookingCreated публикует сообщение о новом бронировании
func (n *Notifier) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	text := bookingText(booking, n.location)

	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
		),
	)
	if err != nil {
		return fmt.Errorf("slacknotify: post message to %s: %w", n.channelID, err)
	}

	return nil
}

func bookingText(b *domain.Booking, loc *time.Location) string {
	pickup := b.PickupAt.In(loc)
	text := fmt.Sprintf(":package: *New pickup booking*\n*%s* at *%s*\nName: %s\nEmail: %s\nPhone: %s",
		pickup.Format(domain.DateFormat), pickup.Format(domain.TimeFormat), b.Name, b.Email, b.Phone)
	if b.OrderNumber != "" {
		text += fmt.Sprintf("\nOrder: %s", b.OrderNumber)
	}
	return text
}

// Nop notifier, который ничего не отправляет (Slack не настроен)
type Nop struct{}

func (Nop) BookingCreated(context.Context, *domain.Booking) error {
	return nil
}
