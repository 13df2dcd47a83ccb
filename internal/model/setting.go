package model

// Setting is a process-wide key/value flag.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
