package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UploadFileV2 uploads a file to a Slack channel
	UploadFileV2(params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}
