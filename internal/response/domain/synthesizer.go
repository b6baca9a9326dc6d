package domain

import (
	"fmt"
	"strings"
)

// Synthesizer turns semantic speech fields into finalized markup-bearing
// speech. The assembler delegates all markup concerns here and never escapes
// or validates markup itself.
type Synthesizer interface {
	Synthesize(speech Speech) Speech
}

// SSMLSynthesizer wraps speech output in <speak> tags unless the caller
// already supplied them.
type SSMLSynthesizer struct{}

// Synthesize returns the speech fields as SSML.
func (SSMLSynthesizer) Synthesize(speech Speech) Speech {
	return Speech{
		Output:   wrapSSML(speech.Output),
		Reprompt: wrapSSML(speech.Reprompt),
	}
}

func wrapSSML(text string) string {
	if text == "" {
		return ""
	}
	if strings.HasPrefix(text, "<speak>") {
		return text
	}
	return fmt.Sprintf("<speak>%s</speak>", text)
}

var _ Synthesizer = SSMLSynthesizer{}
