package app

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/notqc/helpmate/internal/chat"
)

// chatFallback is shown when the provider cannot produce a reply.
const chatFallback = "Sorry, something went wrong. Please try again later."

// Chat answers a free-form study message. Topics the student seems to
// struggle with are extracted, accumulated as weak topics and, when a
// video finder is configured, turned into tutorial recommendations
// appended to the reply. On provider failure the returned string is a
// friendly fallback and the error carries the cause.
func (c *StudyContext) Chat(ctx context.Context, message string) (string, error) {
	reply, err := c.chat.Respond(ctx, message)
	if err != nil {
		return chatFallback, err
	}

	topics, err := chat.ExtractTopics(ctx, c.provider, message)
	if err != nil || len(topics) == 0 {
		// Extraction is best effort; the reply stands on its own.
		return reply, nil
	}
	c.addWeakTopics(topics)

	if c.videos == nil {
		return reply, nil
	}
	var recs []string
	for _, topic := range topics {
		url, err := c.videos.FindTopicVideo(ctx, topic)
		if err != nil || url == "" {
			continue
		}
		recs = append(recs, fmt.Sprintf("- %s: %s", titleCase(topic), url))
	}
	if len(recs) > 0 {
		reply += "\n\nRecommended study videos:\n" + strings.Join(recs, "\n")
	}
	return reply, nil
}

// ChatHistory returns the conversation so far.
func (c *StudyContext) ChatHistory() []chat.Message {
	return c.chat.History()
}

// titleCase upper-cases the first letter of each word. Extracted
// topics come back lowercased.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
