package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ffcommunity/banwatch/internal/model"
)

// toWireEmbed converts a display payload to the SDK's embed type
func toWireEmbed(payload *model.EmbedPayload) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(payload.Fields))
	for _, f := range payload.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.Label,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       payload.Title,
		Description: payload.Description,
		Color:       payload.Color,
		Fields:      fields,
	}
	if payload.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: payload.Footer}
	}
	if !payload.Timestamp.IsZero() {
		embed.Timestamp = payload.Timestamp.UTC().Format(time.RFC3339)
	}
	return embed
}
