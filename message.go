package ftracker

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionUndefined is returned when a derived value divides by zero, eg a zero duration
var ErrDivisionUndefined = errors.New("division undefined")

// ErrUnknownLanguage is returned for a message language without labels
var ErrUnknownLanguage = errors.New("unknown language")

// Language selects the labels of a rendered message
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

var layouts = map[Language]string{
	English: "Training type: %s; Duration: %.3f h.; Distance: %.3f km; " +
		"Avg. speed: %.3f km/h; Calories burned: %.3f.",
	Russian: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; " +
		"Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
}

// InfoMessage is the summary of a completed training
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// ShowTrainingInfo computes the summary of the training
func ShowTrainingInfo(t Training) (*InfoMessage, error) {
	msg := &InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
	for _, v := range []float64{msg.Distance, msg.Speed, msg.Calories} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s with duration %v", ErrDivisionUndefined, msg.TrainingType, msg.Duration)
		}
	}
	return msg, nil
}

// Message renders the summary as a single line with English labels
func (m *InfoMessage) Message() string {
	return m.format(layouts[English])
}

// Localized renders the summary with the labels of the language
func (m *InfoMessage) Localized(lang Language) (string, error) {
	layout, ok := layouts[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return m.format(layout), nil
}

func (m *InfoMessage) format(layout string) string {
	return fmt.Sprintf(layout, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Render summarizes the training as a single English line
func Render(t Training) (string, error) {
	msg, err := ShowTrainingInfo(t)
	if err != nil {
		return "", err
	}
	return msg.Message(), nil
}
