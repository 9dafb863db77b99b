package models

import (
	"fmt"
	"strings"
)

// UserProfile carries the attributes the advice prompt reasons about.
// It is supplied per request and never stored.
type UserProfile struct {
	Gender   string `json:"gender"`
	SkinTone string `json:"skin_tone"`
	BodyType string `json:"body_type"`
}

// SceneContext describes where the outfit will be worn.
type SceneContext struct {
	Occasion string `json:"occasion"`
	Weather  string `json:"weather"`
}

var (
	Genders   = []string{"Female", "Male", "Non-binary"}
	SkinTones = []string{"Fair", "Light", "Medium", "Tan", "Deep"}
	BodyTypes = []string{"Hourglass", "Pear", "Rectangle", "Inverted Triangle", "Athletic"}
	Occasions = []string{"Casual Day Out", "Date Night", "Job Interview", "Wedding Guest", "Gym/Active"}
	Weathers  = []string{"Sunny & Hot", "Mild/Spring", "Cold/Rainy", "Freezing"}
)

func (p UserProfile) Validate() error {
	if err := oneOf("gender", p.Gender, Genders); err != nil {
		return err
	}
	if err := oneOf("skin_tone", p.SkinTone, SkinTones); err != nil {
		return err
	}
	return oneOf("body_type", p.BodyType, BodyTypes)
}

func (s SceneContext) Validate() error {
	if err := oneOf("occasion", s.Occasion, Occasions); err != nil {
		return err
	}
	return oneOf("weather", s.Weather, Weathers)
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (allowed: %s)", field, value, strings.Join(allowed, ", "))
}
