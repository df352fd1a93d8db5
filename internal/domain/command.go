package domain

// Outgoing request parameter keys. The service expects them in this fixed
// enumeration order: sn, token, voice, then the command fields.
const (
	ParamSerial            = "sn"
	ParamToken             = "token"
	ParamVoice             = "voice"
	ParamMessageID         = "idmessage"
	ParamRightEar          = "posright"
	ParamLeftEar           = "posleft"
	ParamAppID             = "idapp"
	ParamSpeech            = "tts"
	ParamChoreography      = "chor"
	ParamChoreographyTitle = "chortitle"
	ParamNabcast           = "nabcast"
	ParamEarQuery          = "ears"
)

// Param is one outgoing request parameter. Parameter order is significant
// to the service, so parameters travel as a slice, never a map.
type Param struct {
	Key   string
	Value string
}

// Identity is the immutable identity of one rabbit: hardware serial,
// access token and an optional voice override for spoken messages.
type Identity struct {
	Serial string
	Token  string
	Voice  string
}
