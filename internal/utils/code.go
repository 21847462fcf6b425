package utils

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const twoStepsCodeLength = 6

// GenerateTwoStepsCode derives a short uppercase alphanumeric code
// from a random UUID: last dash-separated segment, uppercased,
// truncated to six characters.
func GenerateTwoStepsCode() string {
	id := uuid.NewString()
	parts := strings.Split(id, "-")
	segment := strings.ToUpper(parts[len(parts)-1])
	if len(segment) > twoStepsCodeLength {
		segment = segment[:twoStepsCodeLength]
	}
	return segment
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// JSONStringSlice marshals a string slice into a jsonb column value.
// A nil slice maps to a JSON empty array, not SQL NULL.
func JSONStringSlice(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

func StringSliceFromJSON(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return []string{}
	}
	return values
}
