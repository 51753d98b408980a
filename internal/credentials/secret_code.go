package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Word lists for generating human-memorable recovery codes
var colors = []string{
	"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink", "Silver", "Gold", "Teal",
}

var animals = []string{
	"Fox", "Bear", "Lion", "Tiger", "Wolf", "Eagle", "Panda", "Shark", "Dino", "Robot",
}

var shapes = []string{
	"Star", "Circle", "Square", "Moon", "Heart", "Diamond", "Bolt", "Gem", "Sun", "Cloud",
}

// GenerateSecretCode generates a recovery code in the format
// Color+Animal+Shape+4-digit number, e.g. "RedFoxStar4821".
func GenerateSecretCode() (string, error) {
	color, err := randomElement(colors)
	if err != nil {
		return "", err
	}

	animal, err := randomElement(animals)
	if err != nil {
		return "", err
	}

	shape, err := randomElement(shapes)
	if err != nil {
		return "", err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s%s%d", color, animal, shape, 1000+n.Int64()), nil
}
