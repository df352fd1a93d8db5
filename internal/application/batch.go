package application

import (
	"context"
	"fmt"

	"nabaztag/internal/domain"
)

// The fixed enumeration order of command fields on the wire, after the
// identity fields.
var fieldOrder = []string{
	domain.ParamMessageID,
	domain.ParamRightEar,
	domain.ParamLeftEar,
	domain.ParamAppID,
	domain.ParamSpeech,
	domain.ParamChoreography,
	domain.ParamChoreographyTitle,
	domain.ParamNabcast,
	domain.ParamEarQuery,
}

// Batch accumulates pending command fields and their verifiers between two
// sends. Setting the same field or registering the same label twice before
// a dispatch supersedes the earlier value: conflicting commands issued
// without an intervening send collapse to the latter. A Batch is owned by
// one facade and is not safe for concurrent use.
type Batch struct {
	identity  domain.Identity
	fields    map[string]string
	verifiers []Verifier
	earQuery  bool
}

func NewBatch(identity domain.Identity) *Batch {
	return &Batch{
		identity: identity,
		fields:   make(map[string]string),
	}
}

// SetField stores or overwrites one pending command field.
func (b *Batch) SetField(key, value string) {
	b.fields[key] = value
}

// RegisterVerifier stores or replaces the verifier for label. A replaced
// verifier keeps its original position so evaluation order stays the
// registration order.
func (b *Batch) RegisterVerifier(label string, kind CommandKind) {
	for i := range b.verifiers {
		if b.verifiers[i].Label == label {
			b.verifiers[i].Kind = kind
			return
		}
	}
	b.verifiers = append(b.verifiers, Verifier{Label: label, Kind: kind})
}

// RequestEarPositions marks the batch as an ear-position query.
func (b *Batch) RequestEarPositions() {
	b.earQuery = true
	b.SetField(domain.ParamEarQuery, "ok")
}

// Commands lists the registered verifier labels in evaluation order.
func (b *Batch) Commands() []string {
	labels := make([]string, 0, len(b.verifiers))
	for _, v := range b.verifiers {
		labels = append(labels, v.Label)
	}
	return labels
}

// Parameters builds the outgoing parameter set: identity fields, the voice
// override if any, then every non-empty command field in the fixed wire
// order. Absent fields are omitted entirely, never sent empty.
func (b *Batch) Parameters() []domain.Param {
	params := []domain.Param{
		{Key: domain.ParamSerial, Value: b.identity.Serial},
		{Key: domain.ParamToken, Value: b.identity.Token},
	}
	if b.identity.Voice != "" {
		params = append(params, domain.Param{Key: domain.ParamVoice, Value: b.identity.Voice})
	}
	for _, key := range fieldOrder {
		if value, ok := b.fields[key]; ok && value != "" {
			params = append(params, domain.Param{Key: key, Value: value})
		}
	}
	return params
}

// Dispatch performs exactly one request for the whole batch and verifies
// every registered command against the reply. It never retries: rapid
// repeated requests are known to destabilize the service.
//
// The returned ear positions are non-nil only when the batch requested them
// and both sides were readable in the reply; an unreadable position is not
// an error.
func (b *Batch) Dispatch(ctx context.Context, transport Transport, codec Codec) (*domain.EarPositions, error) {
	params := b.Parameters()
	for i := range params {
		encoded, err := codec.EncodeOutbound(params[i].Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", params[i].Key, err)
		}
		params[i].Value = encoded
	}

	raw, err := transport.Submit(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("submitting batch: %w", err)
	}

	text, err := codec.DecodeInbound(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding reply: %w", err)
	}
	normalized := NormalizeResponse(text)

	var positions *domain.EarPositions
	if b.earQuery {
		if p, ok := DecodeEarPositions(normalized); ok {
			positions = &p
		}
	}

	for _, v := range b.verifiers {
		if !v.Verify(normalized) {
			return nil, &domain.ServiceError{Command: v.Label, Response: text}
		}
	}

	return positions, nil
}
