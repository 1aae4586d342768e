package domain

import "fmt"

// Measurement is the computed summary of one workout.
type Measurement struct {
	Label    string
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}

// Message renders the summary line shown to the user.
func (m Measurement) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.Label, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
