// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/notqc/helpmate/ent/analysisevent"
	"github.com/notqc/helpmate/ent/answerevent"
	"github.com/notqc/helpmate/ent/bookmarkevent"
	"github.com/notqc/helpmate/ent/completionevent"
	"github.com/notqc/helpmate/ent/llmrequestevent"
	"github.com/notqc/helpmate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescDocumentName is the schema descriptor for document_name field.
	analysiseventDescDocumentName := analysiseventFields[0].Descriptor()
	// analysisevent.DefaultDocumentName holds the default value on creation for the document_name field.
	analysisevent.DefaultDocumentName = analysiseventDescDocumentName.Default.(string)
	// analysiseventDescTotalQuestions is the schema descriptor for total_questions field.
	analysiseventDescTotalQuestions := analysiseventFields[1].Descriptor()
	// analysisevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	analysisevent.DefaultTotalQuestions = analysiseventDescTotalQuestions.Default.(int)
	// analysiseventDescCorrectAnswers is the schema descriptor for correct_answers field.
	analysiseventDescCorrectAnswers := analysiseventFields[2].Descriptor()
	// analysisevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	analysisevent.DefaultCorrectAnswers = analysiseventDescCorrectAnswers.Default.(int)
	// analysiseventDescSummary is the schema descriptor for summary field.
	analysiseventDescSummary := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultSummary holds the default value on creation for the summary field.
	analysisevent.DefaultSummary = analysiseventDescSummary.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[1].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescSkipped is the schema descriptor for skipped field.
	answereventDescSkipped := answereventFields[4].Descriptor()
	// answerevent.DefaultSkipped holds the default value on creation for the skipped field.
	answerevent.DefaultSkipped = answereventDescSkipped.Default.(bool)
	// answereventDescSelectedIndex is the schema descriptor for selected_index field.
	answereventDescSelectedIndex := answereventFields[5].Descriptor()
	// answerevent.DefaultSelectedIndex holds the default value on creation for the selected_index field.
	answerevent.DefaultSelectedIndex = answereventDescSelectedIndex.Default.(int)
	// answereventDescCorrect is the schema descriptor for correct field.
	answereventDescCorrect := answereventFields[7].Descriptor()
	// answerevent.DefaultCorrect holds the default value on creation for the correct field.
	answerevent.DefaultCorrect = answereventDescCorrect.Default.(bool)
	bookmarkeventMixin := schema.BookmarkEvent{}.Mixin()
	bookmarkeventMixinFields0 := bookmarkeventMixin[0].Fields()
	_ = bookmarkeventMixinFields0
	bookmarkeventFields := schema.BookmarkEvent{}.Fields()
	_ = bookmarkeventFields
	// bookmarkeventDescTimestamp is the schema descriptor for timestamp field.
	bookmarkeventDescTimestamp := bookmarkeventMixinFields0[1].Descriptor()
	// bookmarkevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	bookmarkevent.DefaultTimestamp = bookmarkeventDescTimestamp.Default.(func() time.Time)
	// bookmarkeventDescAction is the schema descriptor for action field.
	bookmarkeventDescAction := bookmarkeventFields[0].Descriptor()
	// bookmarkevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	bookmarkevent.ActionValidator = bookmarkeventDescAction.Validators[0].(func(string) error)
	// bookmarkeventDescTopic is the schema descriptor for topic field.
	bookmarkeventDescTopic := bookmarkeventFields[1].Descriptor()
	// bookmarkevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	bookmarkevent.TopicValidator = bookmarkeventDescTopic.Validators[0].(func(string) error)
	// bookmarkeventDescQuestionIndex is the schema descriptor for question_index field.
	bookmarkeventDescQuestionIndex := bookmarkeventFields[2].Descriptor()
	// bookmarkevent.DefaultQuestionIndex holds the default value on creation for the question_index field.
	bookmarkevent.DefaultQuestionIndex = bookmarkeventDescQuestionIndex.Default.(int)
	// bookmarkeventDescQuestionText is the schema descriptor for question_text field.
	bookmarkeventDescQuestionText := bookmarkeventFields[3].Descriptor()
	// bookmarkevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	bookmarkevent.QuestionTextValidator = bookmarkeventDescQuestionText.Validators[0].(func(string) error)
	// bookmarkeventDescCorrectIndex is the schema descriptor for correct_index field.
	bookmarkeventDescCorrectIndex := bookmarkeventFields[5].Descriptor()
	// bookmarkevent.DefaultCorrectIndex holds the default value on creation for the correct_index field.
	bookmarkevent.DefaultCorrectIndex = bookmarkeventDescCorrectIndex.Default.(int)
	// bookmarkeventDescExplanationSteps is the schema descriptor for explanation_steps field.
	bookmarkeventDescExplanationSteps := bookmarkeventFields[6].Descriptor()
	// bookmarkevent.DefaultExplanationSteps holds the default value on creation for the explanation_steps field.
	bookmarkevent.DefaultExplanationSteps = bookmarkeventDescExplanationSteps.Default.(string)
	// bookmarkeventDescVideoURL is the schema descriptor for video_url field.
	bookmarkeventDescVideoURL := bookmarkeventFields[7].Descriptor()
	// bookmarkevent.DefaultVideoURL holds the default value on creation for the video_url field.
	bookmarkevent.DefaultVideoURL = bookmarkeventDescVideoURL.Default.(string)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescSessionID is the schema descriptor for session_id field.
	completioneventDescSessionID := completioneventFields[0].Descriptor()
	// completionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	completionevent.SessionIDValidator = completioneventDescSessionID.Validators[0].(func(string) error)
	// completioneventDescTopic is the schema descriptor for topic field.
	completioneventDescTopic := completioneventFields[1].Descriptor()
	// completionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	completionevent.TopicValidator = completioneventDescTopic.Validators[0].(func(string) error)
	// completioneventDescDay is the schema descriptor for day field.
	completioneventDescDay := completioneventFields[2].Descriptor()
	// completionevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	completionevent.DayValidator = completioneventDescDay.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
