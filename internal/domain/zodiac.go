// Package domain holds the planet enumeration, zodiac classification, and
// the snapshot and event types shared across the calculator.
package domain

import (
	"fmt"
	"math"
)

// ZodiacSigns are the twelve sidereal signs, Aries first.
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// ZodiacSignsVI are the Vietnamese sign names, same order.
var ZodiacSignsVI = [12]string{
	"Bạch Dương", "Kim Ngưu", "Song Tử", "Cự Giải", "Sư Tử", "Xử Nữ",
	"Thiên Bình", "Thần Nông", "Nhân Mã", "Ma Kết", "Bảo Bình", "Song Ngư",
}

// Placement locates an ecliptic longitude inside the sidereal zodiac. It
// carries only the sign-relative view; the full longitude stays on
// EclipticPosition so embedding both in BodyPosition leaves one unambiguous
// Longitude selector.
type Placement struct {
	Sign         string  `json:"sign"`
	SignVI       string  `json:"sign_vi"`
	SignIndex    int     `json:"sign_index"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Degree       string  `json:"degree_formatted"`
}

// ClassifyLongitude maps an ecliptic longitude to its zodiac placement.
// The longitude is normalized into [0, 360) first, so a value of exactly
// 360 lands in Aries and 30 lands in Taurus.
func ClassifyLongitude(longitude float64) Placement {
	lon := NormalizeLongitude(longitude)
	signIndex := int(lon / 30)
	degree := math.Mod(lon, 30)

	return Placement{
		Sign:         ZodiacSigns[signIndex],
		SignVI:       ZodiacSignsVI[signIndex],
		SignIndex:    signIndex,
		DegreeInSign: degree,
		Degree:       FormatDegree(degree),
	}
}

// FormatDegree renders a degree-in-sign as D°MM'SS". Minutes and seconds are
// truncated, not rounded, so 29.9999° stays 29°59'59" instead of rolling over.
func FormatDegree(degree float64) string {
	d := int(degree)
	m := int((degree - float64(d)) * 60)
	s := int(((degree-float64(d))*60 - float64(m)) * 60)
	return fmt.Sprintf("%d°%02d'%02d\"", d, m, s)
}

// NormalizeLongitude reduces a longitude into [0, 360).
func NormalizeLongitude(longitude float64) float64 {
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}
