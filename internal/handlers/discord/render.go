package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00ff00
	colorRed   = 0xff0000
	colorGold  = 0xffd700
	colorGrey  = 0x95a5a6
	colorBlue  = 0x3498db
)

// renderEvent builds the Discord message for event, or nil when the event is not relayed.
// Only system chat lines, rolls and status changes leave the table.
func renderEvent(event *hub.Event) *discordgo.MessageSend {
	switch payload := event.Payload.(type) {
	case *models.ChatMessage:
		if event.Type != hub.EventChatMessageBroadcast || payload.Type != models.MessageTypeSystem {
			return nil
		}
		return &discordgo.MessageSend{Content: payload.Content}

	case *models.DiceRoll:
		if event.Type != hub.EventDiceRollResult {
			return nil
		}
		return &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{renderRoll(payload)}}

	case *game.StatusChangedPayload:
		if event.Type != hub.EventGameStatusChanged {
			return nil
		}
		return &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{renderStatus(payload)}}
	}

	return nil
}

func renderRoll(roll *models.DiceRoll) *discordgo.MessageEmbed {
	results := make([]string, len(roll.Results))
	for i, r := range roll.Results {
		results[i] = fmt.Sprint(r)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s rolled %s", roll.UserID, roll.Description),
		Description: fmt.Sprintf("[%s] = **%d**", strings.Join(results, ", "), roll.Total),
		Color:       colorBlue,
	}
	if roll.RollType != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Roll",
			Value:  roll.RollType,
			Inline: true,
		})
	}

	return embed
}

func renderStatus(p *game.StatusChangedPayload) *discordgo.MessageEmbed {
	title := "Game session"
	if p.Session != nil && p.Session.Name != "" {
		title = p.Session.Name
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("%s → %s", p.From, p.To),
		Color:       statusColor(p.To),
	}
}

func statusColor(status models.GameStatus) int {
	switch status {
	case models.GameStatusActive:
		return colorGreen
	case models.GameStatusPaused:
		return colorGold
	case models.GameStatusCancelled:
		return colorRed
	case models.GameStatusCompleted:
		return colorGrey
	default:
		return colorBlue
	}
}
