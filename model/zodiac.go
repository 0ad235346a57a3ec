package model

import "math"

// ZodiacSigns is the fixed zodiac wheel starting at Koç (Aries), one sign per
// 30° of ecliptic longitude.
var ZodiacSigns = [12]string{
	"Koç", "Boğa", "İkizler", "Yengeç",
	"Aslan", "Başak", "Terazi", "Akrep",
	"Yay", "Oğlak", "Kova", "Balık",
}

// SignForLongitude maps an ecliptic longitude in degrees to its zodiac sign.
// The longitude is normalized into [0,360) first so negative and >360 inputs
// resolve to the same sign as their canonical angle.
func SignForLongitude(longitude float64) string {
	norm := math.Mod(math.Mod(longitude, 360)+360, 360)
	return ZodiacSigns[int(norm/30)]
}
