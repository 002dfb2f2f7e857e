package search

import (
	"fmt"
	"strings"
)

// NoResultsMessage is shown when a search produced nothing at all
const NoResultsMessage = "I couldn't find specific information about that topic. Could you please rephrase your question or ask about a different UAE-related topic?"

// FormatResults renders a response as a numbered markdown list for the chat
func FormatResults(resp Response) string {
	if len(resp.Results) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 **Web Search Results for \"%s\"**\n\n", resp.Query))

	for i, result := range resp.Results {
		sb.WriteString(fmt.Sprintf("**%d. %s**\n", i+1, result.Title))
		sb.WriteString(result.Snippet + "\n")
		sb.WriteString(fmt.Sprintf("🔗 %s\n\n", result.Link))
	}

	sb.WriteString("---\n*Results from web search. For the most current information, please visit the official sources above.*")
	return sb.String()
}
