// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import "math"

// The functions in this file implement the NOAA solar position
// calculations. All angles are in degrees and times in minutes unless
// otherwise noted; longitudes are positive west.

func degToRad(d float64) float64 { return d / 180.0 * math.Pi }
func radToDeg(r float64) float64 { return r * 180.0 / math.Pi }

func julianCent(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

func geomMeanLongSun(t float64) float64 {
	l0 := math.Mod(280.46646+t*(36000.76983+0.0003032*t), 360)
	if l0 < 0 {
		l0 += 360
	}
	return l0
}

func geomMeanAnomalySun(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

func eccentricityEarthOrbit(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

func sunEqOfCenter(t float64) float64 {
	mrad := degToRad(geomMeanAnomalySun(t))
	return math.Sin(mrad)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*mrad)*(0.019993-0.000101*t) +
		math.Sin(3*mrad)*0.000289
}

func sunTrueLong(t float64) float64 {
	return geomMeanLongSun(t) + sunEqOfCenter(t)
}

func sunApparentLong(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return sunTrueLong(t) - 0.00569 - 0.00478*math.Sin(degToRad(omega))
}

func meanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23.0 + (26.0+seconds/60.0)/60.0
}

func obliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquityOfEcliptic(t) + 0.00256*math.Cos(degToRad(omega))
}

func sunDeclination(t float64) float64 {
	e := obliquityCorrection(t)
	lambda := sunApparentLong(t)
	return radToDeg(math.Asin(math.Sin(degToRad(e)) * math.Sin(degToRad(lambda))))
}

// equationOfTime returns the equation of time in minutes.
func equationOfTime(t float64) float64 {
	epsilon := obliquityCorrection(t)
	l0 := degToRad(geomMeanLongSun(t))
	e := eccentricityEarthOrbit(t)
	m := degToRad(geomMeanAnomalySun(t))

	y := math.Tan(degToRad(epsilon) / 2.0)
	y *= y
	sin2l0, cos2l0 := math.Sincos(2.0 * l0)
	sinm := math.Sin(m)
	etime := y*sin2l0 - 2.0*e*sinm + 4.0*e*y*sinm*cos2l0 -
		0.5*y*y*math.Sin(4.0*l0) - 1.25*e*e*math.Sin(2.0*m)
	return radToDeg(etime) * 4.0
}

// zenith is the solar zenith angle at rise and set, allowing for
// atmospheric refraction and the radius of the solar disc.
var cosZenith = math.Cos(degToRad(90.833))

// hourAngle returns the hour angle of sunrise in radians, and false if
// the sun does not rise or set on the day.
func hourAngle(lat, dec float64) (float64, bool) {
	latRad, decRad := degToRad(lat), degToRad(dec)
	divider := math.Cos(latRad) * math.Cos(decRad)
	if math.Abs(divider) < 0.0000001 {
		return 0, false
	}
	arg := cosZenith/divider - math.Tan(latRad)*math.Tan(decRad)
	if math.Abs(arg) > 1 {
		return 0, false
	}
	return math.Acos(arg), true
}

// eventUTC computes the time of sunrise, or of sunset if sign is -1, as
// minutes from midnight UTC on the day given by jd. The computation is
// repeated once using the time found by the first pass.
func eventUTC(jd, lat, lon, sign float64) (float64, bool) {
	t := julianCent(jd)
	timeUTC := 0.0
	for pass := 0; pass < 2; pass++ {
		eqTime := equationOfTime(t)
		ha, ok := hourAngle(lat, sunDeclination(t))
		if !ok {
			return 0, false
		}
		delta := lon - radToDeg(sign*ha)
		timeUTC = 720 + 4*delta - eqTime
		t = julianCent(jd + timeUTC/1440.0)
	}
	return timeUTC, true
}

func sunriseUTC(jd, lat, lon float64) (float64, bool) {
	return eventUTC(jd, lat, lon, 1)
}

func sunsetUTC(jd, lat, lon float64) (float64, bool) {
	return eventUTC(jd, lat, lon, -1)
}

// solarNoonUTC returns the time of solar noon in minutes from midnight
// UTC.
func solarNoonUTC(t, lon float64) float64 {
	return 720 + lon*4 - equationOfTime(t)
}
