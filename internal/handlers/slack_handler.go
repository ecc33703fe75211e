package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
	slackcmd "github.com/leafcorps/medic-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	medicService  contract.MedicService
	signingSecret string
}

func New(slackClient contract.SlackClient, medicService contract.MedicService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		medicService:  medicService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdReport:
		return h.handleReport(ctx, cmd, slashCmd)
	case slackcmd.CmdLeaderboard:
		return h.handleLeaderboard(ctx)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd)
	case slackcmd.CmdRebuild:
		return h.handleRebuild(ctx)
	case slackcmd.CmdExport:
		return h.handleExport(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleReport(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	fields, err := slackcmd.ParseReportFields(cmd.Rest)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid report: %v", err))
	}

	summary, err := h.medicService.SubmitReport(ctx, entity.ReportInput{
		JobType:     fields.JobType,
		MedicsText:  fields.Medics,
		ClientsText: fields.Clients,
		DateText:    fields.Date,
		TimeRange:   fields.TimeRange,
		Description: fields.Description,
		ChannelID:   slashCmd.ChannelID,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return h.createErrorResponse(err.Error())
		}
		return h.createErrorResponse("Failed to log the report, please try again")
	}

	text := fmt.Sprintf("✅ Report logged for %s — %d points awarded (%d min, %d clients).",
		strings.Join(summary.Medics, ", "), summary.Points, summary.DurationMinutes, summary.Clients)
	if summary.RebuildErr != nil {
		text += "\n⚠️ The report is saved, but updating the leaderboards failed; run `/medic rebuild` to retry."
	} else {
		text += " All sheets updated!"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleLeaderboard(ctx context.Context) *slack.Msg {
	board, err := h.medicService.MonthlyLeaderboard(ctx)
	if err != nil {
		return h.createErrorResponse("Failed to load the leaderboard, please try again")
	}

	if len(board.Rows) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         "📋 No medic data found for this month.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 *Medic Leaderboard — %s*\n", board.SheetTitle())
	for _, row := range board.Rows {
		if row.Rank > 10 {
			break
		}
		fmt.Fprintf(&b, "*%d. %s* — %.2f pts (%d jobs)\n", row.Rank, row.Medic, row.AdjustedPoints, row.JobsLogged)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         strings.TrimRight(b.String(), "\n"),
	}
}

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	name := strings.TrimSpace(cmd.Rest)
	if name == "" {
		return h.createErrorResponse("Please provide a medic name: `/medic stats NAME`")
	}

	row, err := h.medicService.LifetimeStats(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			return h.createErrorResponse(fmt.Sprintf("No medic found matching: *%s*", name))
		}
		return h.createErrorResponse("Failed to load lifetime stats, please try again")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💠 *Lifetime Stats — %s*\n", row.Medic)
	fmt.Fprintf(&b, "Rank: %s | Total Jobs: %d | Raw Points: %d | Adjusted Points: %.2f | Hours: %.2f\n",
		row.Rank, row.TotalJobs, row.TotalRawPoints, row.TotalAdjustedPoints, row.TotalHours)
	fmt.Fprintf(&b, "*Hours Breakdown:*\n")
	fmt.Fprintf(&b, "• Raid: %.2f\n", row.RaidHours)
	fmt.Fprintf(&b, "• LMPF: %.2f\n", row.LMPFHours)
	fmt.Fprintf(&b, "• Healing: %.2f\n", row.HealingHours)
	fmt.Fprintf(&b, "• Rev/Spar: %.2f\n", row.RevSparHours)
	fmt.Fprintf(&b, "• Escort: %.2f\n", row.EscortHours)
	fmt.Fprintf(&b, "• World Boss: %.2f\n", row.WorldBossHours)
	fmt.Fprintf(&b, "• Arc: %.2f\n", row.ArcHours)
	fmt.Fprintf(&b, "• Mission: %.2f\n", row.MissionHours)
	fmt.Fprintf(&b, "• Hosted Event: %.2f", row.HostedEventHours)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleRebuild(ctx context.Context) *slack.Msg {
	if err := h.medicService.RebuildAll(ctx); err != nil {
		return h.createErrorResponse("Failed to rebuild the sheets, please try again")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ All leaderboards and the master log have been rebuilt!",
	}
}

func (h *SlackHandler) handleExport(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	data, err := h.medicService.ExportWorkbook(ctx)
	if err != nil {
		return h.createErrorResponse("Failed to export the workbook, please try again")
	}

	_, err = h.slackClient.UploadFileV2(slack.UploadFileV2Parameters{
		Reader:   bytes.NewReader(data),
		Filename: "medic-corps.xlsx",
		FileSize: len(data),
		Title:    "Medic Corps Workbook",
		Channel:  slashCmd.ChannelID,
	})
	if err != nil {
		return h.createErrorResponse("Failed to upload the workbook, please try again")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Workbook exported and uploaded to this channel.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
