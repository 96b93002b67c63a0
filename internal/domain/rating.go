package domain

import (
	"math"
	"unicode/utf16"
)

// Rating is a display-only pseudo-rating derived from product identity.
// It is not a statistical model: the same product always gets the same value.
type Rating struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// RatingFor derives the rating of p from its id and name.
func RatingFor(p Product) Rating {
	h := identityHash(p.ID + p.Name)
	rating := 4 + float64(h%10)/20 // 4.0 .. 4.45
	return Rating{
		Rating: math.Floor(rating*2+0.5) / 2,
		Count:  60 + int(h%240),
	}
}

// identityHash is the 31-multiplier polynomial hash over UTF-16 code units,
// wrapped to signed 32 bits, returned as its absolute value.
func identityHash(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
