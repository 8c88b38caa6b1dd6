package usecase

const (
	// ClassifyHistoryWindow is how many turns accompany the classify call.
	ClassifyHistoryWindow = 6

	// GeneralHistoryWindow is how many turns accompany a general answer,
	// matching the context the assistant renders as User:/Assistant: lines.
	GeneralHistoryWindow = 5
)

// GeneralPrompt frames the second LLM call for general questions.
const GeneralPrompt = `You are a helpful weather assistant. Answer the user's question based on your knowledge about weather.
Keep your responses concise and informative.

Conversation history:
%s

User's latest question: %s`

// User-facing recovery messages. Every external failure resolves to one
// of these so the conversation always continues.
const (
	MsgLocationNotFound   = "Sorry, I couldn't find a city called %q. Please check the spelling and try again."
	MsgWeatherUnavailable = "Sorry, the weather service is unavailable right now. Please try again in a moment."
	MsgGeneralUnavailable = "Sorry, I'm having trouble processing your request right now. Please try again."
)
