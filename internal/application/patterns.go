package application

import "regexp"

// CommandKind selects the success patterns used to verify one command
// against the service reply. The kind doubles as the human-readable label
// reported in failures.
type CommandKind string

const (
	KindSpeech       CommandKind = "Speech"
	KindEars         CommandKind = "Ears"
	KindChoreography CommandKind = "Choreography"
	KindMessage      CommandKind = "Message"
	KindNabcast      CommandKind = "Nabcast"
)

// The service acknowledges each command with a sentence in either English
// or French, depending on how the rabbit is configured. One pattern per
// language per command kind.
var successPatterns = map[CommandKind][]*regexp.Regexp{
	KindSpeech: {
		regexp.MustCompile(`(?i)your text has been sent`),
		regexp.MustCompile(`(?i)votre texte a été transmis`),
	},
	KindEars: {
		regexp.MustCompile(`(?i)your command has been sent`),
		regexp.MustCompile(`(?i)votre commande a été envoyée`),
	},
	KindChoreography: {
		regexp.MustCompile(`(?i)your choreography has been sent`),
		regexp.MustCompile(`(?i)votre chorégraphie a été envoyée`),
	},
	KindMessage: {
		regexp.MustCompile(`(?i)your message has been sent`),
		regexp.MustCompile(`(?i)votre message a été envoyé`),
	},
	KindNabcast: {
		regexp.MustCompile(`(?i)your message has been posted to the nabcast`),
		regexp.MustCompile(`(?i)votre message a été posté sur le nabcast`),
	},
}

var leftPositionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)left position\s*=\s*(-?\d+)`),
	regexp.MustCompile(`(?i)position gauche\s*=\s*(-?\d+)`),
}

var rightPositionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)right position\s*=\s*(-?\d+)`),
	regexp.MustCompile(`(?i)position droite\s*=\s*(-?\d+)`),
}

// Verifier checks one command's success against the full normalized reply.
// Verifiers are plain data so a pending batch stays inspectable.
type Verifier struct {
	Label string
	Kind  CommandKind
}

// Verify reports whether the reply acknowledges the command in either
// language.
func (v Verifier) Verify(response string) bool {
	for _, re := range successPatterns[v.Kind] {
		if re.MatchString(response) {
			return true
		}
	}
	return false
}
