package types

import "errors"

// Model errors returned by the pure update functions.
var (
	ErrLevelNotFound    = errors.New("level not found")
	ErrUnknownMode      = errors.New("unknown play mode")
	ErrUnknownGemKey    = errors.New("unknown gem key")
	ErrDifficultyRange  = errors.New("difficulty must be between 1 and 10")
	ErrEmptyNote        = errors.New("note must not be empty")
	ErrInvalidTrialTime = errors.New("invalid trial time")
	ErrUnknownTheme     = errors.New("unknown theme mode")
)

// Backup errors returned by the codec and validator.
var (
	ErrBackupDecode  = errors.New("failed to load backup")
	ErrInvalidBackup = errors.New("invalid backup file")
)
