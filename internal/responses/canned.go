package responses

import "uae-chat/internal/analyzer"

// ForCategory returns the canned answer for a category; unknown categories
// get the general answer.
func ForCategory(category string) string {
	switch category {
	case analyzer.CategoryTourist:
		return tourist
	case analyzer.CategoryTransport:
		return transport
	case analyzer.CategoryEvents:
		return events
	case analyzer.CategoryEmergency:
		return emergency
	case analyzer.CategoryWeather:
		return weather
	default:
		return General
	}
}

// SearchUnavailable prefixes the general answer when the web search could not run
const SearchUnavailable = "I apologize, but I'm having trouble searching the web right now. Let me provide you with some general information instead.\n\n"

const tourist = `🏖️ **Top UAE Tourist Attractions**

**Dubai:**
• Burj Khalifa - World's tallest building (Opens 8:30 AM - 11 PM)
• Dubai Mall - Shopping paradise with aquarium
• Palm Jumeirah - Artificial island with luxury resorts
• Dubai Fountain - Musical fountain show every 30 mins

**Abu Dhabi:**
• Louvre Abu Dhabi - Art and culture museum
• Sheikh Zayed Grand Mosque - Stunning architecture
• Ferrari World - Theme park for car enthusiasts

Would you like specific information about any of these attractions?`

const transport = `🚗 **UAE Transportation Guide**

**Dubai Metro:**
• Red Line: Dubai Airport ↔ Expo City (5 AM - 12 AM)
• Green Line: Etisalat ↔ Creek (5:30 AM - 12 AM)
• Cost: AED 3-8.5 per journey

**Dubai Bus:**
• 119 routes across the city
• Cost: AED 3-10 per journey
• Real-time tracking via the S'hail app

**Taxis:**
• Starting fare: AED 5 (day) / AED 5.5 (night)
• Uber & Careem also available

**Abu Dhabi:**
• Integrated Transport Centre buses
• Hafilat card for easy payment

Need specific route planning? Just ask!`

const events = `🎉 **UAE Cultural Events**

**Seasonal Highlights:**
• Dubai Shopping Festival (Dec-Jan) - Discounts & entertainment
• Al Dhafra Festival - Traditional camel beauty contest
• Dubai Food Festival - Culinary celebrations

**Traditional Culture:**
• Mosque visits (respectful dress required)
• Traditional souks: Gold, Spice, Textile
• Heritage villages in each emirate

**Dining Recommendations:**
• Al Hadheerah - Desert dining experience
• Pierchic - Seafood over water
• Arabian Tea House - Traditional Emirati cuisine

What type of cultural experience interests you most?`

const emergency = `🚨 **UAE Emergency Services**

**Police:** 999
**Ambulance:** 998
**Fire Department:** 997

**Dubai Specific:**
• Dubai Municipality: 800 900
• DEWA (electricity & water): 991

**Tourist Police:**
• Dubai: 800 4438
• Available 24/7 in multiple languages

Are you currently experiencing an emergency? If yes, please call 999 immediately!`

const weather = `🌤️ **UAE Weather Guide**

**Seasons:**
• November - March: 20-30°C, ideal for outdoor sightseeing
• April - October: 35-45°C, humid on the coast

**Perfect Activities:**
• Morning: Beach visits, outdoor sightseeing
• Afternoon: Indoor malls, museums
• Evening: Desert safari, outdoor dining

**Clothing Recommendation:**
Light, breathable fabrics. Carry a light jacket for air-conditioned spaces.

Ask "What is the weather in Dubai today?" for current conditions.`

// General is the catch-all answer
const General = `Thank you for your question! I'm here to help with information about the UAE.

I can assist you with:
🏖️ Tourist attractions and recommendations
🚗 Transportation and getting around
🎉 Cultural events and local customs
🚨 Emergency services and safety
🌤️ Weather and activity suggestions

Could you please be more specific about what you'd like to know? For example:
• "Show me Dubai tourist spots"
• "How do I use Dubai Metro?"
• "What cultural events are happening?"
• "I need emergency contacts"`
