package helper

import (
	"time"

	"github.com/quickcourt/quickcourt/pkg/constant"
)

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

func CalculateEndTime(startTime time.Time, durationHours int) time.Time {
	return startTime.Add(time.Duration(durationHours) * time.Hour)
}

func CalculateTotalPrice(pricePerHour int64, durationHours int) int64 {
	if pricePerHour <= 0 || durationHours <= 0 {
		return 0
	}

	return pricePerHour * int64(durationHours)
}

// CalculateDurationHours returns the whole number of hours between two
// wall-clock times in "15:04" format. Returns 0 when the range is malformed
// or not aligned to whole hours.
func CalculateDurationHours(startTime, endTime string) int {
	start, err := time.Parse(constant.HoursFormat, startTime)
	if err != nil {
		return 0
	}

	end, err := time.Parse(constant.HoursFormat, endTime)
	if err != nil {
		return 0
	}

	d := end.Sub(start)
	if d <= 0 || d%time.Hour != 0 {
		return 0
	}

	return int(d / time.Hour)
}

// ToMinorUnits converts an amount in major currency units to the minor units
// expected by the payment provider.
func ToMinorUnits(amount int64) int64 {
	return amount * constant.MinorUnitFactor
}
