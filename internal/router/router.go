package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weather-chat-agent/pkg/gemini"
)

// Classify determines user intent from a message plus the recent
// conversation window. It never propagates classification failures:
// anything unparseable degrades to the GENERAL fallback. The single LLM
// call is not retried.
func (r *SemanticRouter) Classify(ctx context.Context, message string, conversationHistory []string) (RouterOutput, error) {
	historyContext := ""
	if len(conversationHistory) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range conversationHistory {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	prompt := historyContext + fmt.Sprintf(PromptRouterSystem, message)

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: RouterTemperature,
		},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, falling back to GENERAL: %v", LogPrefixClassify, err)
		return fallback(ReasonLLMError), nil
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		r.l.Warnf(ctx, "%s: empty LLM response, falling back to GENERAL", LogPrefixClassify)
		return fallback(ReasonEmptyResponse), nil
	}

	responseText := extractJSON(resp.Candidates[0].Content.Parts[0].Text)

	var output RouterOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON, falling back to GENERAL: %v", LogPrefixClassify, err)
		return fallback(ReasonParsingError), nil
	}

	output.Intent = Intent(strings.ToUpper(strings.TrimSpace(string(output.Intent))))
	output.Location = strings.TrimSpace(output.Location)

	if !output.Intent.valid() {
		r.l.Warnf(ctx, "%s: unknown intent %q, falling back to GENERAL", LogPrefixClassify, output.Intent)
		return fallback(ReasonUnknownIntent), nil
	}

	// Weather routing without a location cannot be dispatched; availability
	// wins over strict routing.
	if output.Intent.IsWeather() && output.Location == "" {
		r.l.Warnf(ctx, "%s: weather intent without location, falling back to GENERAL", LogPrefixClassify)
		return fallback(ReasonMissingLocation), nil
	}

	if output.Days <= 0 {
		output.Days = DefaultForecastDays
	}

	r.l.Infof(ctx, "%s: classified as %s location=%q days=%d (confidence: %d%%)",
		LogPrefixClassify, output.Intent, output.Location, output.Days, output.Confidence)
	return output, nil
}

func fallback(reason string) RouterOutput {
	return RouterOutput{
		Intent:     RouterFallbackIntent,
		Days:       DefaultForecastDays,
		Confidence: RouterFallbackConfidence,
		Reasoning:  reason,
	}
}

// extractJSON strips markdown code fences and reduces the text to the
// outermost JSON object. Models occasionally wrap the payload despite
// being told not to.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}
	return text
}
