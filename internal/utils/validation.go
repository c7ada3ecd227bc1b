package utils

import "errors"

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lng float64) error {
	if lng < -180.0 || lng > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateBBoxParams checks the four bounding-box query parameters together:
// each coordinate must be in range and the minimums must not exceed the
// maximums. Returns a map of field errors, empty when the box is valid.
func ValidateBBoxParams(minLat, minLng, maxLat, maxLng float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateLatitude(minLat); err != nil {
		fieldErrors["minLat"] = append(fieldErrors["minLat"], err.Error())
	}
	if err := ValidateLatitude(maxLat); err != nil {
		fieldErrors["maxLat"] = append(fieldErrors["maxLat"], err.Error())
	}
	if err := ValidateLongitude(minLng); err != nil {
		fieldErrors["minLng"] = append(fieldErrors["minLng"], err.Error())
	}
	if err := ValidateLongitude(maxLng); err != nil {
		fieldErrors["maxLng"] = append(fieldErrors["maxLng"], err.Error())
	}
	if minLat > maxLat {
		fieldErrors["minLat"] = append(fieldErrors["minLat"], "minLat must not exceed maxLat")
	}
	if minLng > maxLng {
		fieldErrors["minLng"] = append(fieldErrors["minLng"], "minLng must not exceed maxLng")
	}

	return fieldErrors
}

// ValidateBufferMeters validates the builder's buffer radius.
func ValidateBufferMeters(bufferMeters int) error {
	if bufferMeters <= 0 {
		return errors.New("bufferMeters must be positive")
	}
	if bufferMeters > 50000 {
		return errors.New("bufferMeters too large (max 50000)")
	}
	return nil
}
