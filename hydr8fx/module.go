package hydr8fx

import (
	"errors"
	"log/slog"

	"github.com/0xalexb/hydr8"
	"github.com/0xalexb/hydr8/source"

	"go.uber.org/fx"
)

// ErrNoSource is returned when Module is built without a config source.
var ErrNoSource = errors.New("config source must be set, use WithFile or WithTree")

// Option defines a function type for configuring the module.
type Option func(*options)

type options struct {
	file    string
	tree    hydr8.Tree
	hasTree bool
}

// WithFile loads the config tree from the given file when the
// application is assembled.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithTree supplies an already-built config tree.
func WithTree(tree hydr8.Tree) Option {
	return func(o *options) {
		o.tree = tree
		o.hasTree = true
	}
}

// initParams collects the module's dependencies. The logger is optional
// so the module works in apps that do not provide one.
type initParams struct {
	fx.In

	Tree   hydr8.Tree
	Logger *slog.Logger `optional:"true"`
}

// Module returns an Fx module that loads a config tree, provides it to
// the DI graph, and installs it as the process-wide hydr8 config.
// Exactly one source option is required; WithTree wins when both are
// given.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules.
func Module(opts ...Option) fx.Option {
	var o options

	for _, apply := range opts {
		apply(&o)
	}

	if o.file == "" && !o.hasTree {
		return fx.Error(ErrNoSource)
	}

	return fx.Module("hydr8",
		fx.Provide(func() (hydr8.Tree, error) {
			if o.hasTree {
				return o.tree, nil
			}

			return source.File(o.file)
		}),
		fx.Invoke(func(p initParams) {
			hydr8.Init(p.Tree)

			logger := p.Logger
			if logger == nil {
				logger = slog.Default()
			}

			if o.hasTree {
				logger.Info("config initialized")
			} else {
				logger.Info("config initialized", slog.String("file", o.file))
			}
		}),
	)
}
