package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/tavern/internal/handlers/discord Sender

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/bwmarrin/discordgo"
)

const queueSize = 100

// Sender is the part of a Discord session the relay posts through
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot mirrors session events into one Discord channel
type Bot struct {
	session   *discordgo.Session
	sender    Sender
	channelID string

	events chan *hub.Event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// ChannelID receives every relayed event
	ChannelID string

	// Sender replaces the Discord session when set
	Sender Sender
}

// New creates a new Discord relay
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	bot := &Bot{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		events:    make(chan *hub.Event, queueSize),
		done:      make(chan struct{}),
	}

	if bot.sender == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}

		// Create a new Discord session
		session, err := discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		bot.session = session
		bot.sender = session
	}

	return bot, nil
}

// Start opens the Discord connection and begins relaying
func (b *Bot) Start() error {
	if b.session != nil {
		if err := b.session.Open(); err != nil {
			return fmt.Errorf("failed to open Discord connection: %w", err)
		}
	}

	b.wg.Add(1)
	go b.run()

	log.Printf("Discord relay posting to channel %s", b.channelID)
	return nil
}

// Stop ends the relay and closes the Discord connection
func (b *Bot) Stop() error {
	b.once.Do(func() { close(b.done) })
	b.wg.Wait()

	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

// OnEvent queues event for relay. It never blocks the hub; a full queue drops the event.
func (b *Bot) OnEvent(event *hub.Event) {
	select {
	case <-b.done:
		return
	default:
	}

	select {
	case b.events <- event:
	default:
		log.Printf("Discord relay queue full, dropping %s for session %s", event.Type, event.SessionID)
	}
}

func (b *Bot) run() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case event := <-b.events:
			msg := renderEvent(event)
			if msg == nil {
				continue
			}
			if _, err := b.sender.ChannelMessageSendComplex(b.channelID, msg); err != nil {
				log.Printf("Failed to relay %s for session %s: %v", event.Type, event.SessionID, err)
			}
		}
	}
}
