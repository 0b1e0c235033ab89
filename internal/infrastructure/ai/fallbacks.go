package ai

// Fallback payloads returned when generation or parsing fails. Each builder
// returns a fresh value so callers can mutate the result safely.

func journeyFallback() any {
	return map[string]any{
		"description":  "An exciting journey through breathtaking landscapes and cultural experiences.",
		"duration":     "7 Days",
		"difficulty":   "Moderate",
		"activities":   "Trekking, Photography, Cultural Visits",
		"category":     "Adventure",
		"image_prompt": "Beautiful mountain landscape with travelers hiking",
	}
}

func experienceFallback() any {
	return map[string]any{
		"description":  "An unforgettable experience that combines adventure with local culture.",
		"duration":     "Full Day",
		"group_size":   "4-12 people",
		"price":        "₹3,500 per person",
		"highlights":   "Expert guide, Local cuisine, Photography spots",
		"category":     "Culture",
		"image_prompt": "Group of travelers enjoying a cultural experience",
	}
}

func packageFallback() any {
	return map[string]any{
		"excerpt":      "Discover the perfect travel package for your next adventure.",
		"content":      "This comprehensive package includes everything you need for an unforgettable journey. From accommodation to guided tours, we've got you covered. Experience the best destinations with our carefully curated itineraries.",
		"category":     "Adventure",
		"author":       "Travel Expert",
		"author_bio":   "Seasoned traveler with 10+ years of experience",
		"tags":         "Travel, Adventure, Package",
		"read_time":    "5 min read",
		"image_prompt": "Travel package brochure with beautiful destination photos",
	}
}

func mealPlanFallback() any {
	return map[string]any{
		"description":   "A carefully curated meal plan featuring local and international cuisine.",
		"meal_count":    "3 Meals per day",
		"dietary_focus": "Local Cuisine",
		"price":         "₹1,500 per day",
		"benefits":      "Fresh ingredients, Local flavors, Healthy options",
	}
}

func resortActivityFallback() any {
	return map[string]any{
		"description":      "Enjoy a relaxing activity at our resort.",
		"full_description": "This activity offers a perfect way to unwind and enjoy your stay. Our experienced staff will ensure you have a memorable experience. Suitable for all ages and skill levels.",
		"icon":             "Mountain",
		"image_prompt":     "Resort activity in a beautiful natural setting",
	}
}

func resortPackageFallback() any {
	return map[string]any{
		"duration":       "2 Days / 1 Night",
		"price":          "₹8,999",
		"original_price": "₹12,999",
		"description":    "A perfect getaway package with all amenities included.",
		"includes":       "Accommodation\nAll meals\nGuided activities\nTransportation\nWelcome drink",
		"features":       "Luxury accommodation\nGourmet dining\nSpa access\nAdventure activities",
		"badge":          "Popular",
		"image_prompt":   "Luxury resort package presentation",
	}
}

func blogPostFallback() any {
	return map[string]any{
		"excerpt":      "Explore the wonders of travel through our latest blog post.",
		"content":      "Travel opens up new perspectives and creates lifelong memories. In this post, we share insights and tips for making the most of your journeys. Whether you're a seasoned traveler or planning your first trip, you'll find valuable information here.",
		"category":     "Travel Tips",
		"author":       "Travel Blogger",
		"author_bio":   "Passionate about sharing travel experiences and tips",
		"tags":         "Travel, Tips, Adventure",
		"read_time":    "4 min read",
		"image_prompt": "Blog post header with travel-themed imagery",
	}
}

func destinationFallback() any {
	return map[string]any{
		"description": "A beautiful destination in the Himalayan region offering breathtaking views and cultural experiences.",
		"duration":    "5-7 days",
		"difficulty":  "Moderate",
		"best_time":   "March to May, September to November",
		"altitude":    "2,000-4,000 meters",
		"category":    "Adventure",
		"highlights":  "Mountain views, Local culture, Trekking routes",
		"overview":    "This destination offers a perfect blend of natural beauty and cultural richness. Nestled in the majestic Himalayas, it provides visitors with unforgettable experiences ranging from challenging treks to serene cultural explorations. The region is known for its warm hospitality and diverse landscapes that cater to all types of travelers.",
	}
}

func placeFallback() any {
	return map[string]any{
		"name":        "Scenic Viewpoint",
		"description": "A beautiful viewpoint offering panoramic views of the surrounding mountains.",
		"highlights":  []any{"Panoramic views", "Great for photography", "Accessible location"},
	}
}

func activityFallback() any {
	return map[string]any{
		"title":       "1. Mountain Trekking",
		"description": "Experience the thrill of trekking through beautiful mountain trails with expert guides.",
	}
}

func itineraryFallback() any {
	return []any{
		map[string]any{
			"day":   1,
			"title": "Arrival and Acclimatization",
			"activities": []any{
				"Arrive at destination",
				"Check into accommodation",
				"Light walk around town",
				"Evening cultural show",
			},
		},
	}
}

func faqFallback() any {
	return []any{
		map[string]any{
			"question": "What is the best time to visit?",
			"answer":   "The best time to visit is during the spring (March to May) and autumn (September to November) seasons when the weather is pleasant and skies are clear.",
		},
	}
}

func travelInfoFallback() any {
	return map[string]any{
		"details": []any{
			"Nearest airport: Tribhuvan International Airport",
			"Flight duration: 30-45 minutes from Kathmandu",
			"Best to book tickets in advance",
		},
	}
}

func seasonFallback() any {
	return map[string]any{
		"season":     "Winter (December-February)",
		"weather":    "Cold with occasional snowfall",
		"why_visit":  "Fewer crowds, beautiful snow-capped mountains",
		"events":     "Christmas, New Year celebrations",
		"challenges": "Cold temperatures, possible road closures",
	}
}

func accommodationFallback() any {
	return map[string]any{
		"description": "Comfortable lodging options suitable for budget travelers",
		"options":     []any{"Local guesthouses", "Budget hotels", "Homestays"},
	}
}

func travelTipsFallback() any {
	return map[string]any{
		"tips": []any{
			"Pack warm clothing",
			"Stay hydrated",
			"Respect local customs",
			"Carry necessary permits",
		},
	}
}

func destinationAllFallback() any {
	return map[string]any{
		"basic":      destinationFallback(),
		"overview":   "This destination offers a perfect blend of natural beauty and cultural richness.",
		"places":     []any{placeFallback()},
		"activities": []any{activityFallback()},
		"howToReach": map[string]any{
			"air":   []any{"Nearest airport: Tribhuvan International Airport", "Flight duration: 30-45 minutes from Kathmandu"},
			"train": []any{"No direct rail link; nearest railhead across the border", "Onward travel by road"},
			"road":  []any{"Regular buses from Kathmandu", "Private jeeps available for hire"},
		},
		"bestTime": map[string]any{
			"winter":  seasonFallback(),
			"summer":  map[string]any{"season": "Summer (March-May)", "weather": "Warm days with clear mountain views", "why_visit": "Ideal trekking conditions and blooming rhododendrons", "events": "Spring festivals", "challenges": "Popular routes can be busy"},
			"monsoon": map[string]any{"season": "Monsoon (June-August)", "weather": "Heavy rainfall with lush green valleys", "why_visit": "Fewer tourists and vibrant landscapes", "events": "Local harvest celebrations", "challenges": "Landslides and leeches on trails"},
		},
		"accommodation": map[string]any{
			"budget":   accommodationFallback(),
			"midrange": map[string]any{"description": "Comfortable hotels with modern amenities", "options": []any{"Boutique hotels", "Mid-range lodges", "Guesthouses with private rooms"}},
			"luxury":   map[string]any{"description": "Premium resorts offering full-service stays", "options": []any{"Luxury resorts", "Heritage properties", "Boutique spa retreats"}},
		},
		"itinerary":  itineraryFallback(),
		"travelTips": []any{"Pack warm clothing", "Stay hydrated", "Respect local customs", "Carry necessary permits"},
		"faqs":       faqFallback(),
	}
}
