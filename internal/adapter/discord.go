package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/models"
)

// embed colors
const (
	colorInfo  = 2829617
	colorError = 0xED4245
	colorOK    = 0x57F287
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type messageRequest struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

type openChannelRequest struct {
	RecipientID string `json:"recipient_id"`
}

type channelResponse struct {
	ID string `json:"id"`
}

type discordNotifier struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewDiscordNotifier constructs the REST implementation of [Notifier]
// authenticated with the bot token.
func NewDiscordNotifier(cfg config.Discord, log *logger.Logger) Notifier {
	client := utils.NewJSONClient(strings.TrimRight(cfg.APIURL, "/"), cfg.RequestTimeout)
	client.SetHeader("Authorization", "Bot "+cfg.BotToken)
	withRateLimitRetry(client, cfg)

	return &discordNotifier{client: client, logger: log}
}

// OpenDirectChannel implements [Notifier].
func (d *discordNotifier) OpenDirectChannel(ctx context.Context, ownerID int64) (models.Recipient, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(openChannelRequest{RecipientID: strconv.FormatInt(ownerID, 10)}).
		Post("/users/@me/channels")
	if err != nil {
		return models.Recipient{}, transportError("open dm channel", err)
	}
	if err = mapDiscordStatus("open dm channel", resp); err != nil {
		return models.Recipient{}, err
	}

	var channel channelResponse
	if err = json.Unmarshal(resp.Body(), &channel); err != nil || channel.ID == "" {
		return models.Recipient{}, fmt.Errorf("%w: open dm channel: no channel id", ErrTransport)
	}

	return models.Recipient{OwnerID: ownerID, ChannelID: channel.ID}, nil
}

// Send implements [Notifier].
func (d *discordNotifier) Send(ctx context.Context, recipient models.Recipient, n models.Notification) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(messageRequest{Embeds: []embed{{
			Title:       n.Title,
			Description: n.Body,
			Color:       colorInfo,
		}}}).
		Post("/channels/" + recipient.ChannelID + "/messages")
	if err != nil {
		return transportError("send message", err)
	}
	return mapDiscordStatus("send message", resp)
}

type opsWebhook struct {
	client *utils.HTTPClient
	url    string
	logger *logger.Logger
}

// NewOpsReporter constructs the webhook implementation of [OpsReporter].
// With an empty cfg.OpsWebhookURL events are only logged.
func NewOpsReporter(cfg config.Discord, log *logger.Logger) OpsReporter {
	if strings.TrimSpace(cfg.OpsWebhookURL) == "" {
		return &logOnlyReporter{logger: log}
	}

	client := utils.NewJSONClient("", cfg.RequestTimeout)
	withRateLimitRetry(client, cfg)

	return &opsWebhook{
		client: client,
		url:    cfg.OpsWebhookURL,
		logger: log,
	}
}

func (o *opsWebhook) post(ctx context.Context, msg messageRequest) error {
	resp, err := o.client.R().SetContext(ctx).SetBody(msg).Post(o.url)
	if err != nil {
		return transportError("ops webhook", err)
	}
	return mapDiscordStatus("ops webhook", resp)
}

// ReportError implements [OpsReporter]. The trace id of ctx, when set,
// is shown in the embed footer.
func (o *opsWebhook) ReportError(ctx context.Context, message string, reportErr error) {
	e := embed{
		Title:       message,
		Description: codeBlock(reportErr),
		Color:       colorError,
	}
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		e.Footer = &embedFooter{Text: "run " + traceID}
	}
	msg := messageRequest{Embeds: []embed{e}}

	if err := o.post(ctx, msg); err != nil {
		o.logger.Err(err).Str("func", "*opsWebhook.ReportError").Msg("error delivering ops report")
	}
}

// Heartbeat implements [OpsReporter].
func (o *opsWebhook) Heartbeat(ctx context.Context, hb models.Heartbeat) error {
	e := embed{
		Title:     hb.Service,
		Color:     colorOK,
		Timestamp: hb.CompletedAt.UTC().Format(time.RFC3339),
		Fields: []embedField{
			{Name: "Completed", Value: fmt.Sprintf("<t:%d:F>", hb.CompletedAt.Unix()), Inline: true},
			{Name: "Processed", Value: strconv.Itoa(hb.Processed), Inline: true},
		},
	}
	if hb.HadErrors {
		e.Color = colorError
		e.Fields = append(e.Fields, embedField{
			Name:  "Error",
			Value: fmt.Sprintf("%d subscriber(s) failed, see the error reports above", hb.ErrorCount),
		})
	}

	return o.post(ctx, messageRequest{Embeds: []embed{e}})
}

type logOnlyReporter struct {
	logger *logger.Logger
}

func (l *logOnlyReporter) ReportError(_ context.Context, message string, err error) {
	l.logger.Err(err).Str("func", "*logOnlyReporter.ReportError").Msg(message)
}

func (l *logOnlyReporter) Heartbeat(_ context.Context, hb models.Heartbeat) error {
	l.logger.Info().Str("func", "*logOnlyReporter.Heartbeat").
		Str("service", hb.Service).
		Time("completed_at", hb.CompletedAt).
		Bool("had_errors", hb.HadErrors).
		Int("processed", hb.Processed).
		Int("errors", hb.ErrorCount).
		Msg("heartbeat")
	return nil
}

func codeBlock(err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	const limit = 4000
	if len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return "```\n" + text + "\n```"
}
