// Package ai provides generative drafting of catalog content. Each content
// type pairs a prompt template with a deterministic fallback payload so a
// failed or garbled model response still yields usable draft content.
package ai

import (
	"fmt"
	"sort"
)

// ContentType identifies one draftable content shape.
type ContentType string

const (
	TypeJourney        ContentType = "journey"
	TypeExperience     ContentType = "experience"
	TypePackage        ContentType = "package"
	TypeMealPlan       ContentType = "mealPlan"
	TypeResortActivity ContentType = "resortActivity"
	TypeResortPackage  ContentType = "resortPackage"
	TypeBlogPost       ContentType = "blogPost"
	TypeDestination    ContentType = "destination"
	TypePlace          ContentType = "place"
	TypeActivity       ContentType = "activity"
	TypeItinerary      ContentType = "itinerary"
	TypeFAQ            ContentType = "faq"
	TypeTravelInfo     ContentType = "travelInfo"
	TypeSeason         ContentType = "season"
	TypeAccommodation  ContentType = "accommodation"
	TypeTravelTips     ContentType = "travelTips"
	TypeDestinationAll ContentType = "destinationAll"
)

// Shape says whether a type's generated payload is a JSON object or a
// JSON array. Itinerary and FAQ drafts are lists of entries; everything
// else is a single field map.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

// definition binds everything known about one content type. Keeping the
// prompt and fallback in a single registry entry means a type can never
// gain one without the other.
type definition struct {
	shape    Shape
	prompt   func(title string) string
	fallback func() any
}

var registry = map[ContentType]definition{
	TypeJourney:        {ShapeObject, journeyPrompt, journeyFallback},
	TypeExperience:     {ShapeObject, experiencePrompt, experienceFallback},
	TypePackage:        {ShapeObject, packagePrompt, packageFallback},
	TypeMealPlan:       {ShapeObject, mealPlanPrompt, mealPlanFallback},
	TypeResortActivity: {ShapeObject, resortActivityPrompt, resortActivityFallback},
	TypeResortPackage:  {ShapeObject, resortPackagePrompt, resortPackageFallback},
	TypeBlogPost:       {ShapeObject, blogPostPrompt, blogPostFallback},
	TypeDestination:    {ShapeObject, destinationPrompt, destinationFallback},
	TypePlace:          {ShapeObject, placePrompt, placeFallback},
	TypeActivity:       {ShapeObject, activityPrompt, activityFallback},
	TypeItinerary:      {ShapeArray, itineraryPrompt, itineraryFallback},
	TypeFAQ:            {ShapeArray, faqPrompt, faqFallback},
	TypeTravelInfo:     {ShapeObject, travelInfoPrompt, travelInfoFallback},
	TypeSeason:         {ShapeObject, seasonPrompt, seasonFallback},
	TypeAccommodation:  {ShapeObject, accommodationPrompt, accommodationFallback},
	TypeTravelTips:     {ShapeObject, travelTipsPrompt, travelTipsFallback},
	TypeDestinationAll: {ShapeObject, destinationAllPrompt, destinationAllFallback},
}

// AllContentTypes returns every registered type in stable order.
func AllContentTypes() []ContentType {
	types := make([]ContentType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Valid reports whether t names a registered content type.
func (t ContentType) Valid() bool {
	_, ok := registry[t]
	return ok
}

// ShapeOf returns the payload shape for t.
func (t ContentType) ShapeOf() (Shape, error) {
	def, ok := registry[t]
	if !ok {
		return ShapeObject, fmt.Errorf("unknown content type: %s", t)
	}
	return def.shape, nil
}

// Fallback returns a fresh copy of t's canned draft payload.
func (t ContentType) Fallback() any {
	def, ok := registry[t]
	if !ok {
		return map[string]any{}
	}
	return def.fallback()
}
