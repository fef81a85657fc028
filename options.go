package ringchan

import (
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

type options struct {
	name   string
	buffer BufferKind
	logger logrus.FieldLogger
}

// Option configures a channel at creation.
type Option func(*options)

// WithName sets the name used in log fields and metric labels.
// Defaults to a random UUID.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithBuffer selects the storage implementation. Defaults to RingBuffer.
func WithBuffer(kind BufferKind) Option {
	return func(o *options) {
		o.buffer = kind
	}
}

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{buffer: RingBuffer}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = uuid.NewV4().String()
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}
	return o
}
