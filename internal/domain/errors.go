package domain

import "errors"

var (
	// ErrEmptyDataset is returned when a dataset yields no usable cities
	ErrEmptyDataset = errors.New("dataset contains no valid cities")
	// ErrInvalidConfig wraps every configuration validation failure
	ErrInvalidConfig = errors.New("invalid configuration")
)
