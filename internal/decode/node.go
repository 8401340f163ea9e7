// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"context"
	"fmt"
	"time"

	"github.com/etnolekt/dwarconv/internal/noderun"
	"github.com/etnolekt/dwarconv/pkg/types"
)

// NodeBackend decodes idcodes by running the bundled decode script under
// Node.js, one batch per process invocation. It depends on a
// noderun.Runtime injected at construction time.
type NodeBackend struct {
	runtime noderun.Runtime
	script  string
	timeout time.Duration
}

// NewNodeBackend creates a backend that runs the given decode script. It
// verifies the script and its installed dependencies before returning, so
// a misconfigured environment fails once up front rather than per column.
func NewNodeBackend(rt noderun.Runtime, script string, timeout time.Duration) (*NodeBackend, error) {
	if err := rt.ScriptReady(script); err != nil {
		return nil, fmt.Errorf("decode script not usable: %w", err)
	}
	if timeout <= 0 {
		timeout = types.DefaultDecodeTimeout
	}
	return &NodeBackend{runtime: rt, script: script, timeout: timeout}, nil
}

// Name implements Backend.
func (n *NodeBackend) Name() string { return string(types.BackendNode) }

// Decode runs one batch, passing each idcode as a script argument. The
// call is bounded by the configured timeout; a timed-out process is killed
// and reported as a failed batch.
func (n *NodeBackend) Decode(ctx context.Context, idcodes []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	out, err := n.runtime.Run(ctx, n.script, idcodes)
	if err != nil {
		return "", fmt.Errorf("decoding batch of %d idcodes: %w", len(idcodes), err)
	}
	return out, nil
}
