package responses

import "uae-chat/internal/analyzer"

// QuickReply is a preset prompt offered below the chat input
type QuickReply struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Query    string `json:"query"`
}

var quickReplies = []QuickReply{
	{Text: "🏖️ Tourist Spots", Category: analyzer.CategoryTourist, Query: "Show me popular tourist attractions in Dubai"},
	{Text: "🚗 Transport Info", Category: analyzer.CategoryTransport, Query: "How can I get around Dubai using public transport?"},
	{Text: "🎉 Cultural Events", Category: analyzer.CategoryEvents, Query: "What cultural events are happening in UAE this month?"},
	{Text: "🚨 Emergency Help", Category: analyzer.CategoryEmergency, Query: "I need emergency contact numbers in UAE"},
	{Text: "🌤️ Weather Info", Category: analyzer.CategoryGeneral, Query: "What's the weather like in Dubai today?"},
	{Text: "🍽️ Local Food", Category: analyzer.CategoryEvents, Query: "Recommend traditional UAE restaurants"},
}

// QuickReplies returns a copy of the preset prompts
func QuickReplies() []QuickReply {
	out := make([]QuickReply, len(quickReplies))
	copy(out, quickReplies)
	return out
}
