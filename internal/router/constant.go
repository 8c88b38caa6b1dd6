package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a semantic router for a weather assistant. Analyze the user's message and determine their intent.

Current message: "%s"

Possible intents:
1. CURRENT_WEATHER: current weather conditions for a specific place
2. FORECAST: a multi-day weather forecast for a specific place
3. GENERAL: general weather knowledge, greetings, or anything else

For weather intents also extract the location and, for forecasts, the number of days requested (1-5).

Return JSON with this format:
{
  "intent": "CURRENT_WEATHER|FORECAST|GENERAL",
  "location": "city name or empty string",
  "days": 1,
  "confidence": 0-100,
  "reasoning": "Short explanation"
}

Respond ONLY with the JSON, no other text.`

	PromptHistoryPrefix = "Recent conversation history:\n"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackIntent     = IntentGeneral
	RouterFallbackConfidence = 50
	DefaultForecastDays      = 1
)

// Fallback reasons
const (
	ReasonLLMError        = "Fallback due to LLM error - route to general answer"
	ReasonEmptyResponse   = "Fallback due to empty response"
	ReasonParsingError    = "Fallback due to parsing error - route to general answer"
	ReasonUnknownIntent   = "Fallback due to unknown intent token"
	ReasonMissingLocation = "Fallback due to weather intent without a location"
)
