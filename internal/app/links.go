package app

import "context"

// SolutionLinks looks up a worked-solution video and a textual
// solution page for a question. Either comes back "" when its finder
// is not configured or finds nothing.
func (c *StudyContext) SolutionLinks(ctx context.Context, questionText string) (videoURL, pageURL string) {
	if c.videos != nil {
		videoURL, _ = c.videos.FindSolutionVideo(ctx, questionText)
	}
	if c.solutions != nil {
		pageURL, _ = c.solutions.FindSolutionLink(ctx, questionText)
	}
	return videoURL, pageURL
}
