package domain

import "errors"

var (
	ErrCultivarNotFound = errors.New("cultivar not found")
	ErrGrowNotFound     = errors.New("grow not found")
	ErrPlantCompleted   = errors.New("plant is completed")
	ErrPlantNotFound    = errors.New("plant not found")
)
