// Package matching scores registered professionals against an event
// project so admins building a team see the best candidates first.
//
// The score is a weighted sum of five components, each normalized to
// 0-100: distance to the venue, category match against the requested
// roles, years of experience, availability on the event date, and past
// performance rating. Weights: distance 30, category 30, experience 15,
// availability 15, performance 10.
package matching

import (
	"math"
	"sort"
)

const (
	weightDistance     = 0.30
	weightCategory     = 0.30
	weightExperience   = 0.15
	weightAvailability = 0.15
	weightPerformance  = 0.10

	// Distance at or beyond which the distance component scores zero.
	distanceCutoffKm = 500.0

	// Years of experience at which the experience component maxes out.
	experienceCapYears = 10

	earthRadiusKm = 6371.0
)

// Candidate is a professional as the scorer needs to see them.
type Candidate struct {
	ID         string
	FullName   string
	Email      string
	Phone      string
	Categories []string
	City       string
	State      string
	Latitude   float64
	Longitude  float64

	YearsOfExperience int
	AvailableOnDate   bool
	// PerformanceRating is 0-5 from completed-project reviews; 0 means
	// no history yet.
	PerformanceRating float64
}

// Criteria describes what the project needs.
type Criteria struct {
	EventLatitude  float64
	EventLongitude float64
	// RequiredCategories filters the category component; empty means
	// any category fully matches.
	RequiredCategories []string

	MaxDistanceKm float64
	MinScore      float64
	Limit         int
}

// Suggestion is one scored candidate with its component breakdown.
type Suggestion struct {
	Candidate Candidate

	DistanceKm float64

	TotalScore        float64
	DistanceScore     float64
	CategoryScore     float64
	ExperienceScore   float64
	AvailabilityScore float64
	PerformanceScore  float64
}

// Rank scores every candidate, drops those beyond MaxDistanceKm or
// under MinScore, and returns the rest best-first, truncated to Limit.
func Rank(candidates []Candidate, c Criteria) []Suggestion {
	suggestions := make([]Suggestion, 0, len(candidates))
	for _, cand := range candidates {
		s := score(cand, c)
		if c.MaxDistanceKm > 0 && s.DistanceKm > c.MaxDistanceKm {
			continue
		}
		if s.TotalScore < c.MinScore {
			continue
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalScore > suggestions[j].TotalScore
	})

	if c.Limit > 0 && len(suggestions) > c.Limit {
		suggestions = suggestions[:c.Limit]
	}
	return suggestions
}

func score(cand Candidate, c Criteria) Suggestion {
	distanceKm := HaversineKm(c.EventLatitude, c.EventLongitude, cand.Latitude, cand.Longitude)

	distanceScore := 0.0
	if distanceKm < distanceCutoffKm {
		distanceScore = (1 - distanceKm/distanceCutoffKm) * 100
	}

	categoryScore := categoryMatchScore(cand.Categories, c.RequiredCategories)

	years := cand.YearsOfExperience
	if years > experienceCapYears {
		years = experienceCapYears
	}
	experienceScore := float64(years) / experienceCapYears * 100

	availabilityScore := 0.0
	if cand.AvailableOnDate {
		availabilityScore = 100
	}

	performanceScore := cand.PerformanceRating / 5 * 100
	if performanceScore > 100 {
		performanceScore = 100
	}

	total := distanceScore*weightDistance +
		categoryScore*weightCategory +
		experienceScore*weightExperience +
		availabilityScore*weightAvailability +
		performanceScore*weightPerformance

	return Suggestion{
		Candidate:         cand,
		DistanceKm:        distanceKm,
		TotalScore:        total,
		DistanceScore:     distanceScore,
		CategoryScore:     categoryScore,
		ExperienceScore:   experienceScore,
		AvailabilityScore: availabilityScore,
		PerformanceScore:  performanceScore,
	}
}

// categoryMatchScore is the fraction of required categories the
// candidate holds, scaled to 0-100. No requirement means full match.
func categoryMatchScore(have, required []string) float64 {
	if len(required) == 0 {
		return 100
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, cat := range have {
		haveSet[cat] = struct{}{}
	}
	matched := 0
	for _, cat := range required {
		if _, ok := haveSet[cat]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
