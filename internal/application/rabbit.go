package application

import (
	"context"
	"log/slog"
	"strconv"

	"nabaztag/internal/choreography"
	"nabaztag/internal/domain"
)

// Rabbit is the public surface for one device. Command methods queue work
// on the current pending batch; Send dispatches everything queued so far as
// a single request, because the service misbehaves when commands arrive in
// rapid separate requests.
type Rabbit struct {
	identity  domain.Identity
	transport Transport
	codec     Codec
	logger    *slog.Logger
	batch     *Batch
}

func NewRabbit(identity domain.Identity, transport Transport, codec Codec, logger *slog.Logger) *Rabbit {
	return &Rabbit{
		identity:  identity,
		transport: transport,
		codec:     codec,
		logger:    logger,
		batch:     NewBatch(identity),
	}
}

// Pending exposes the current batch for inspection, e.g. after a failed
// Send.
func (r *Rabbit) Pending() *Batch {
	return r.batch
}

// Say queues text for the rabbit to speak.
func (r *Rabbit) Say(text string) {
	r.batch.SetField(domain.ParamSpeech, text)
	r.batch.RegisterVerifier("Speech", KindSpeech)
}

// MoveEars queues new ear positions (0-16). A nil side leaves that ear, and
// its verification, untouched, so partial updates stay partial.
func (r *Rabbit) MoveEars(left, right *int) {
	if left == nil && right == nil {
		return
	}
	if left != nil {
		r.batch.SetField(domain.ParamLeftEar, strconv.Itoa(*left))
	}
	if right != nil {
		r.batch.SetField(domain.ParamRightEar, strconv.Itoa(*right))
	}
	r.batch.RegisterVerifier("Ears", KindEars)
}

// Choreography compiles the program and queues its payload, with an
// optional title. Compilation errors (unknown LED, ear, direction or color
// names) surface immediately and leave the batch untouched.
func (r *Rabbit) Choreography(title string, program func(*choreography.Compiler) error) error {
	c := choreography.NewCompiler()
	if err := program(c); err != nil {
		return err
	}
	r.batch.SetField(domain.ParamChoreography, c.Encode())
	if title != "" {
		r.batch.SetField(domain.ParamChoreographyTitle, title)
	}
	r.batch.RegisterVerifier("Choreography", KindChoreography)
	return nil
}

// SendMessage queues a predefined message from the service library by id.
func (r *Rabbit) SendMessage(messageID string) {
	r.batch.SetField(domain.ParamMessageID, messageID)
	r.batch.RegisterVerifier("Message", KindMessage)
}

// SetApplication queues the application id some predefined messages require.
func (r *Rabbit) SetApplication(appID string) {
	r.batch.SetField(domain.ParamAppID, appID)
}

// Nabcast queues publication of the batch's spoken message to a nabcast.
func (r *Rabbit) Nabcast(castID string) {
	r.batch.SetField(domain.ParamNabcast, castID)
	r.batch.RegisterVerifier("Nabcast", KindNabcast)
}

// Send dispatches the pending batch. On success the facade starts a fresh
// empty batch; on failure the current batch is kept so the caller can
// inspect it or retry, and must call Reset for a clean slate.
func (r *Rabbit) Send(ctx context.Context) error {
	r.logger.Info("sending batch", "commands", r.batch.Commands())
	if _, err := r.batch.Dispatch(ctx, r.transport, r.codec); err != nil {
		return err
	}
	r.batch = NewBatch(r.identity)
	return nil
}

// Reset discards the pending batch and starts an empty one.
func (r *Rabbit) Reset() {
	r.batch = NewBatch(r.identity)
}

// SayNow queues text and dispatches immediately.
func (r *Rabbit) SayNow(ctx context.Context, text string) error {
	r.Say(text)
	return r.Send(ctx)
}

// MoveEarsNow queues ear positions and dispatches immediately.
func (r *Rabbit) MoveEarsNow(ctx context.Context, left, right *int) error {
	r.MoveEars(left, right)
	return r.Send(ctx)
}

// ChoreographyNow compiles, queues and dispatches a program immediately.
func (r *Rabbit) ChoreographyNow(ctx context.Context, title string, program func(*choreography.Compiler) error) error {
	if err := r.Choreography(title, program); err != nil {
		return err
	}
	return r.Send(ctx)
}

// EarPositions dispatches a standalone ear-position query, leaving the
// pending batch untouched. A nil result with a nil error means the device
// reported no readable position, e.g. while asleep.
func (r *Rabbit) EarPositions(ctx context.Context) (*domain.EarPositions, error) {
	b := NewBatch(r.identity)
	b.RequestEarPositions()
	r.logger.Info("querying ear positions")
	return b.Dispatch(ctx, r.transport, r.codec)
}
