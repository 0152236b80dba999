package localgraph

import "math"

const earthRadiusMeters = 6371000.0

// haversine returns the great-circle distance between two positions,
// in meters.
func haversine(lon1, lat1, lon2, lat2 float64) float64 {
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// tileBounds returns the lon/lat bounding box of slippy tile z/x/y.
func tileBounds(z, x, y int) (minLon, minLat, maxLon, maxLat float64) {
	n := float64(int64(1) << uint(z))
	minLon = float64(x)/n*360 - 180
	maxLon = float64(x+1)/n*360 - 180
	maxLat = tileLat(float64(y), n)
	minLat = tileLat(float64(y+1), n)
	return minLon, minLat, maxLon, maxLat
}

func tileLat(y, n float64) float64 {
	rad := math.Atan(math.Sinh(math.Pi * (1 - 2*y/n)))
	return rad * 180 / math.Pi
}
