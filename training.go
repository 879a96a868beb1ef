package ftracker

import "math"

const (
	// LenStep is the distance in meters covered by one step
	LenStep = 0.65
	// LenStroke is the distance in meters covered by one swimming stroke
	LenStroke = 1.38

	mInKm  = 1000
	minInH = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a single workout session able to derive its own metrics
type Training interface {
	// Name is the display name of the workout kind
	Name() string
	// Hours is the duration of the session in hours
	Hours() float64
	// Distance covered in km
	Distance() float64
	// MeanSpeed in km/h
	MeanSpeed() float64
	// SpentCalories in kcal
	SpentCalories() float64
}

// Workout holds the sensor readings shared by every kind of training.
// It does not compute calories on its own and so is not a Training.
type Workout struct {
	Action   int     `json:"action"`
	Duration float64 `json:"duration"`
	Weight   float64 `json:"weight"`
}

// Hours returns the session duration in hours
func (w Workout) Hours() float64 {
	return w.Duration
}

// Minutes returns the session duration in minutes
func (w Workout) Minutes() float64 {
	return w.Duration * minInH
}

func (w Workout) distance(step float64) float64 {
	return float64(w.Action) * step / mInKm
}

// Running is a running session
type Running struct {
	Workout
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) Distance() float64 {
	return r.distance(LenStep)
}

func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Minutes()
}

// SportsWalking is a race walking session
type SportsWalking struct {
	Workout
	Height float64 `json:"height"`
}

func (s *SportsWalking) Name() string {
	return "SportsWalking"
}

func (s *SportsWalking) Distance() float64 {
	return s.distance(LenStep)
}

func (s *SportsWalking) MeanSpeed() float64 {
	return s.Distance() / s.Duration
}

func (s *SportsWalking) SpentCalories() float64 {
	speed := s.MeanSpeed()
	// the speed/height ratio is floored, not divided
	ratio := math.Floor(speed * speed / s.Height)
	return (walkingCaloriesWeightMultiplier*s.Weight +
		ratio*walkingSpeedHeightMultiplier*s.Weight) * s.Minutes()
}

// Swimming is a pool swimming session
type Swimming struct {
	Workout
	LengthPool float64 `json:"length_pool"`
	CountPool  float64 `json:"count_pool"`
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) Distance() float64 {
	return s.distance(LenStroke)
}

// MeanSpeed is derived from the pool geometry; strokes are ignored
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / mInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
