package model

// Setting is a key/value pair from transcription_settings
type Setting struct {
	Parameter string  `db:"parameter" json:"parameter"`
	Value     *string `db:"value" json:"value"`
}
