package video

import "strings"

// Rating is the content advisory rating. The zero value means unset.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingL     Rating = "L"
	RatingAge10 Rating = "AGE_10"
	RatingAge12 Rating = "AGE_12"
	RatingAge14 Rating = "AGE_14"
	RatingAge16 Rating = "AGE_16"
	RatingAge18 Rating = "AGE_18"
)

var ratingLabels = map[string]Rating{
	"ER": RatingER,
	"L":  RatingL,
	"10": RatingAge10,
	"12": RatingAge12,
	"14": RatingAge14,
	"16": RatingAge16,
	"18": RatingAge18,
}

// ParseRating accepts either the rating name or its label ("AGE_14" or "14").
// Unknown values yield the zero Rating.
func ParseRating(raw string) Rating {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if r, ok := ratingLabels[value]; ok {
		return r
	}
	for _, r := range ratingLabels {
		if string(r) == value {
			return r
		}
	}
	return ""
}

// Label returns the short display form of the rating.
func (r Rating) Label() string {
	return strings.TrimPrefix(string(r), "AGE_")
}
