package ai

import (
	"fmt"
	"sort"
	"strings"
)

// BuildPrompt assembles the full instruction for a content type, folding in
// optional context hints (duration, season, accommodation tier and so on).
func BuildPrompt(contentType ContentType, title string, context map[string]string) (string, error) {
	def, ok := registry[contentType]
	if !ok {
		return "", fmt.Errorf("unknown content type: %s", contentType)
	}

	prompt := def.prompt(title)
	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for k := range context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		sb.WriteString(prompt)
		sb.WriteString("\n\nAdditional context:")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("\n- %s: %s", k, context[k]))
		}
		prompt = sb.String()
	}
	return prompt, nil
}

func journeyPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel journey titled %q. Provide:
1. A compelling description (2-3 sentences)
2. Suggested duration (e.g., "7 Days")
3. Difficulty level (e.g., "Moderate", "Challenging")
4. Activities (comma-separated list)
5. Category (choose from: Trekking, Wildlife, Culture, Adventure, Pilgrimage, Nature)
6. Featured image description

Format as JSON: {
  "description": "string",
  "duration": "string",
  "difficulty": "string",
  "activities": "comma, separated, list",
  "category": "string",
  "image_prompt": "string"
}`, title)
}

func experiencePrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel experience titled %q. Provide:
1. A compelling description (2-3 sentences)
2. Duration (e.g., "Half Day", "Full Day")
3. Group size (e.g., "2-8 people", "Private")
4. Price range (e.g., "₹2,500 per person")
5. Highlights (comma-separated list, 3-5 items)
6. Category (choose from: Trekking, Wildlife, Culture, Adventure, Pilgrimage, Nature)
7. Featured image description
8. Publicly accessible image URL that represents this experience (use Unsplash or other free image source)

Format as JSON: {
  "description": "string",
  "duration": "string",
  "group_size": "string",
  "price": "string",
  "highlights": "comma, separated, list",
  "category": "string",
  "image_prompt": "string",
  "image_url": "string (publicly accessible URL, e.g., Unsplash source)"
}`, title)
}

func packagePrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel package titled %q. Provide:
1. Excerpt (1-2 sentences)
2. Full content (3-4 paragraphs)
3. Category (e.g., "Adventure", "Luxury", "Budget")
4. Author name
5. Author bio (1 sentence)
6. Tags (comma-separated, 3-5 tags)
7. Read time (e.g., "5 min read")
8. Featured image description

Format as JSON: {
  "excerpt": "string",
  "content": "string",
  "category": "string",
  "author": "string",
  "author_bio": "string",
  "tags": "comma, separated, tags",
  "read_time": "string",
  "image_prompt": "string"
}`, title)
}

func mealPlanPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a food dish or meal item titled %q. This is for a restaurant/hotel menu system where items can be served at breakfast, lunch, or dinner.

Provide:
1. Dish description (1-2 sentences)
2. Suggested price in Indian Rupees (₹)
3. Category (choose from: main, starter, dessert, beverage, snack)
4. Suggested spice level (mild, medium, spicy, very_spicy)
5. Whether it's typically vegetarian (true/false)
6. Suggested meal times where this dish is commonly served (choose any combination: breakfast, lunch, dinner)

Format as JSON: {
  "description": "string",
  "price": "string",
  "category": "string",
  "spice_level": "string",
  "is_vegetarian": boolean,
  "meal_times": ["breakfast", "lunch", "dinner"]
}`, title)
}

func resortActivityPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a resort activity titled %q. Provide:
1. Short description (1 sentence)
2. Full detailed description (2-3 paragraphs)
3. Icon name (choose from: Mountain, Tent, Trees, MapPin, Compass, Route, Camera, Coffee, Utensils, Bike, Binoculars, Sailboat, Sun, Star)
4. Activity image description

Format as JSON: {
  "description": "string",
  "full_description": "string",
  "icon": "string",
  "image_prompt": "string"
}`, title)
}

func resortPackagePrompt(title string) string {
	return fmt.Sprintf(`Generate content for a resort package titled %q. Provide:
1. Duration (e.g., "2 Days / 1 Night")
2. Price (e.g., "₹8,999")
3. Original price (e.g., "₹12,999")
4. Description (2-3 sentences)
5. Includes list (newline separated, 5-7 items)
6. Features list (newline separated, 3-5 items)
7. Badge (e.g., "Popular", "Exclusive", "Festival Special")
8. Package image description

Format as JSON: {
  "duration": "string",
  "price": "string",
  "original_price": "string",
  "description": "string",
  "includes": "newline\nseparated\nitems",
  "features": "newline\nseparated\nitems",
  "badge": "string",
  "image_prompt": "string"
}`, title)
}

func blogPostPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel blog post titled %q. Provide:
1. Excerpt (1-2 sentences)
2. Full content (3-4 paragraphs)
3. Category (e.g., "Adventure", "Luxury", "Budget")
4. Author name
5. Author bio (1 sentence)
6. Tags (comma-separated, 3-5 tags)
7. Read time (e.g., "5 min read")
8. Featured image description

Format as JSON: {
  "excerpt": "string",
  "content": "string",
  "category": "string",
  "author": "string",
  "author_bio": "string",
  "tags": "comma, separated, tags",
  "read_time": "string",
  "image_prompt": "string"
}`, title)
}

func destinationPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel destination titled %q. Provide:
1. A compelling description (2-3 sentences)
2. Suggested duration (e.g., "5-7 Days")
3. Difficulty level (e.g., "Easy", "Moderate", "Challenging")
4. Best time to visit (e.g., "March-May, September-November")
5. Altitude range if applicable
6. Category (choose from: Trekking, Wildlife, Culture, Adventure, Pilgrimage, Nature)
7. Highlights (comma-separated list of 3-5 attractions)
8. Overview (3-4 paragraph detailed description)

Format as JSON: {
  "description": "string",
  "duration": "string",
  "difficulty": "string",
  "best_time": "string",
  "altitude": "string",
  "category": "string",
  "highlights": "string",
  "overview": "string"
}`, title)
}

func placePrompt(title string) string {
	return fmt.Sprintf(`Generate content for a tourist place titled %q. Provide:
1. Place description (2-3 sentences)
2. Highlights (array of 3 highlights as strings)

Format as JSON: {
  "description": "string",
  "highlights": ["highlight1", "highlight2", "highlight3"]
}`, title)
}

func activityPrompt(title string) string {
	return fmt.Sprintf(`Generate content for a travel activity titled %q. Provide:
1. Activity title (starting with number like '1. Activity Name')
2. Activity description (2-3 sentences)

Format as JSON: {
  "title": "string (start with number like '1. Activity Name')",
  "description": "string"
}`, title)
}

func itineraryPrompt(title string) string {
	return fmt.Sprintf(`Generate a travel itinerary for %q. For each day provide:
1. Day number (integer)
2. Day title (1-2 sentences)
3. Activities (array of 4-5 activities as strings)

Format as a JSON array: [
  {
    "day": 1,
    "title": "string",
    "activities": ["activity1", "activity2", "activity3", "activity4"]
  }
]`, title)
}

func faqPrompt(title string) string {
	return fmt.Sprintf(`Generate 5-8 FAQ entries for travel to %q. For each provide:
1. Question (string)
2. Answer (2-3 sentences)

Format as a JSON array: [
  {
    "question": "string",
    "answer": "string"
  }
]`, title)
}

func travelInfoPrompt(title string) string {
	return fmt.Sprintf(`Generate travel information details for %q. Provide:
1. Details (array of 3-4 travel details as strings)

Format as JSON: {
  "details": ["detail1", "detail2", "detail3"]
}`, title)
}

func seasonPrompt(title string) string {
	return fmt.Sprintf(`Generate seasonal travel information for %q. Provide:
1. Season name (string)
2. Weather description (string)
3. Why visit (string)
4. Events (string)
5. Challenges (string)

Format as JSON: {
  "season": "string",
  "weather": "string",
  "why_visit": "string",
  "events": "string",
  "challenges": "string"
}`, title)
}

func accommodationPrompt(title string) string {
	return fmt.Sprintf(`Generate accommodation information for %q. Provide:
1. Description (2-3 sentences)
2. Options (array of 3-5 accommodation options as strings)

Format as JSON: {
  "description": "string",
  "options": ["option1", "option2", "option3"]
}`, title)
}

func travelTipsPrompt(title string) string {
	return fmt.Sprintf(`Generate travel tips for %q. Provide:
1. Tips (array of 5-8 travel tips as strings)

Format as JSON: {
  "tips": ["tip1", "tip2", "tip3", "tip4", "tip5"]
}`, title)
}

func destinationAllPrompt(title string) string {
	return fmt.Sprintf(`Generate COMPREHENSIVE travel destination information for %q in Nepal/Himalayan region in ONE SINGLE RESPONSE.

Provide ALL the following sections in structured JSON format:

BASIC INFORMATION:
1. description (2-3 sentences)
2. duration (e.g., "5-7 days")
3. difficulty (Easy/Moderate/Challenging)
4. best_time (seasons/months)
5. altitude (if applicable)
6. category (Trekking/Wildlife/Culture/Adventure/Pilgrimage/Nature)
7. highlights (comma-separated string of 3-5 attractions)

OVERVIEW:
8. overview (3-4 paragraph detailed description)

PLACES TO VISIT:
9. places (array of 5 places, each with name, description, and 2-3 highlights)

ACTIVITIES:
10. activities (array of 5 activities, each with title starting with number and description)

HOW TO REACH:
11. howToReach with air, train, road (each as array of 3-4 details)

BEST TIME DETAILS:
12. bestTime with winter, summer, monsoon (each with season, weather, why_visit, events, challenges)

ACCOMMODATION:
13. accommodation with budget, midrange, luxury (each with description and 3-5 options)

ITINERARY:
14. itinerary (array of days based on duration, each with day number, title, and 4-5 activities)

TRAVEL TIPS:
15. travelTips (array of 8-10 tips)

FAQS:
16. faqs (array of 5-8 FAQs with question and answer)

Format as SINGLE JSON object:
{
  "basic": {
    "description": "string",
    "duration": "string",
    "difficulty": "string",
    "best_time": "string",
    "altitude": "string",
    "category": "string",
    "highlights": "string"
  },
  "overview": "string",
  "places": [{"name": "string", "description": "string", "highlights": ["string1", "string2"]}],
  "activities": [{"title": "string (start with number like '1. Activity Name')", "description": "string"}],
  "howToReach": {
    "air": ["detail1", "detail2", "detail3"],
    "train": ["detail1", "detail2", "detail3"],
    "road": ["detail1", "detail2", "detail3"]
  },
  "bestTime": {
    "winter": {"season": "string", "weather": "string", "why_visit": "string", "events": "string", "challenges": "string"},
    "summer": {"season": "string", "weather": "string", "why_visit": "string", "events": "string", "challenges": "string"},
    "monsoon": {"season": "string", "weather": "string", "why_visit": "string", "events": "string", "challenges": "string"}
  },
  "accommodation": {
    "budget": {"description": "string", "options": ["option1", "option2"]},
    "midrange": {"description": "string", "options": ["option1", "option2"]},
    "luxury": {"description": "string", "options": ["option1", "option2"]}
  },
  "itinerary": [{"day": 1, "title": "string", "activities": ["activity1", "activity2", "activity3"]}],
  "travelTips": ["tip1", "tip2", "tip3"],
  "faqs": [{"question": "string", "answer": "string"}]
}`, title)
}
