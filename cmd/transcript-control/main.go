package main

import "transcript-control/cmd/transcript-control/cmd"

// @title           Transcript Control API
// @version         1.0
// @description     Transcription records, calendar linking and n8n workflow control.
// @BasePath        /api
// @schemes         http https

func main() {
	cmd.Execute()
}
